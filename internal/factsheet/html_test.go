package factsheet

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/euromap/internal/stats"
)

func TestHTMLEscapesData(t *testing.T) {
	blob := fullBlob()
	blob.ByCountry[0].Clubs[0].Name = "<script>x</script>"
	r := newTestRenderer(fakeStats{"france": blob})
	s, _ := r.Render("france", "france")

	out, err := HTML(s)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Error("club name was not escaped")
	}
	for _, want := range []string{
		`<span class="lock-badge">Pinned</span>`,
		`<div class="kpi-value">12</div>`,
		`<li>First <strong>strong</strong> season</li>`,
		`<div class="event-date">12 Sep 2026</div>`,
		`class="event-card event-major"`,
		`<div class="club-list collapsed" id="country-0">`,
		`title="Paris"`,
		`Source: GGE internal databases (2026)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestHTMLReflectsToggle(t *testing.T) {
	s, _ := newTestRenderer(fakeStats{"france": fullBlob()}).Render("france", "")
	s.Toggle(EventsSectionID)
	out, err := HTML(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `<div class="events-list" id="events-list">`) {
		t.Error("expanded events list should not carry the collapsed class")
	}
}

func TestHTMLFallbackCountries(t *testing.T) {
	s, _ := newTestRenderer(fakeStats{"iberia": {KPIs: stats.KPIs{"clubs": 5}}}).Render("iberia", "")
	out, err := HTML(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `<span class="country-tag">Spain</span>`) {
		t.Errorf("missing country tag in %s", out)
	}
	if !strings.Contains(out, `kpi-tile full-width`) {
		t.Error("single tile should be full width")
	}
}

func TestHTMLEmpty(t *testing.T) {
	out, err := HTML(newTestRenderer(fakeStats{}).RenderEmpty())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "factsheet-empty") || !strings.Contains(out, DefaultEmptyLogo) {
		t.Errorf("empty output = %s", out)
	}
}
