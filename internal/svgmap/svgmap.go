// Package svgmap reads the country map SVG, indexes its country shapes by
// ISO-2 code, computes region bounding boxes, and writes the map back out
// with each region's shapes grouped into one interactive element.
package svgmap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"github.com/ziadkadry99/euromap/internal/regions"
)

// shape is one <path data-iso2="..."> element and its byte span in the
// source document.
type shape struct {
	iso2        string
	name        xml.Name
	attrs       []xml.Attr
	start       int64 // offset of '<'
	tagEnd      int64 // offset just past the start tag
	end         int64 // offset just past the end tag
	selfClosing bool
	bounds      orb.Bound
	hasBounds   bool
}

// Map is a parsed country map.
type Map struct {
	raw       []byte
	viewBox   string
	shapes    []shape
	byCountry map[string][]int
	rootEnd   int64
	registry  *regions.Registry
}

// Parse reads an SVG document. Shapes are paths carrying a data-iso2
// attribute; path data that cannot be parsed contributes whatever bounds
// were read before the error.
func Parse(r io.Reader, registry *regions.Registry) (*Map, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading svg: %w", err)
	}

	m := &Map{
		raw:       raw,
		byCountry: make(map[string][]int),
		rootEnd:   -1,
		registry:  registry,
	}

	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity

	depth := 0
	open := -1 // index of the shape currently being read
	openDepth := 0
	for {
		before := dec.InputOffset()
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing svg: %w", err)
		}
		after := dec.InputOffset()

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 && t.Name.Local == "svg" {
				m.viewBox = attr(t.Attr, "viewBox")
			}
			if open >= 0 || t.Name.Local != "path" {
				continue
			}
			code := strings.ToUpper(strings.TrimSpace(attr(t.Attr, "data-iso2")))
			if code == "" {
				continue
			}
			sh := shape{
				iso2:        code,
				name:        t.Name,
				attrs:       append([]xml.Attr(nil), t.Attr...),
				start:       before,
				tagEnd:      after,
				selfClosing: bytes.HasSuffix(bytes.TrimRight(raw[before:after], " \t\r\n"), []byte("/>")),
			}
			if b, ok, _ := pathBounds(attr(t.Attr, "d")); ok {
				sh.bounds, sh.hasBounds = b, true
			}
			m.shapes = append(m.shapes, sh)
			open = len(m.shapes) - 1
			openDepth = depth
		case xml.EndElement:
			if open >= 0 && depth == openDepth {
				m.shapes[open].end = after
				m.byCountry[m.shapes[open].iso2] = append(m.byCountry[m.shapes[open].iso2], open)
				open = -1
			}
			depth--
			if depth == 0 && m.rootEnd < 0 {
				m.rootEnd = before
			}
		}
	}

	if m.rootEnd < 0 {
		return nil, fmt.Errorf("parsing svg: missing root element end")
	}
	return m, nil
}

func attr(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// ViewBox returns the root element's viewBox attribute, if any.
func (m *Map) ViewBox() string { return m.viewBox }

// Countries returns the ISO-2 codes that have at least one shape, sorted.
func (m *Map) Countries() []string {
	out := make([]string, 0, len(m.byCountry))
	for code := range m.byCountry {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Unassigned returns country codes present in the map that belong to no
// region, sorted.
func (m *Map) Unassigned() []string {
	var out []string
	for _, code := range m.Countries() {
		if _, ok := m.registry.RegionFor(code); !ok {
			out = append(out, code)
		}
	}
	return out
}

// CountryBounds returns the union of a country's shape bounds.
func (m *Map) CountryBounds(code string) (orb.Bound, bool) {
	var (
		b    orb.Bound
		have bool
	)
	for _, i := range m.byCountry[strings.ToUpper(code)] {
		sh := m.shapes[i]
		if !sh.hasBounds {
			continue
		}
		if !have {
			b, have = sh.bounds, true
			continue
		}
		b = b.Union(sh.bounds)
	}
	return b, have
}

// RegionBounds returns the bounding box of every shape belonging to the
// region. Unknown regions and regions without shapes report false.
func (m *Map) RegionBounds(regionID string) (orb.Bound, bool) {
	reg, ok := m.registry.Get(regionID)
	if !ok {
		return orb.Bound{}, false
	}
	var (
		b    orb.Bound
		have bool
	)
	for _, code := range reg.Countries {
		cb, ok := m.CountryBounds(code)
		if !ok {
			continue
		}
		if !have {
			b, have = cb, true
			continue
		}
		b = b.Union(cb)
	}
	return b, have
}

// WriteGrouped writes the map with every region's shapes moved into a
// focusable <g class="region-group"> appended at the end of the root
// element, in registry order. Shapes of countries outside every region stay
// in place and gain the class "country-no-region".
func (m *Map) WriteGrouped(w io.Writer) error {
	type edit struct {
		start, end int64
		text       string
	}
	var edits []edit
	for _, sh := range m.shapes {
		if _, ok := m.registry.RegionFor(sh.iso2); ok {
			edits = append(edits, edit{start: sh.start, end: sh.end})
			continue
		}
		attrs := withClass(sh.attrs, "country-no-region")
		edits = append(edits, edit{start: sh.start, end: sh.end, text: m.serialize(sh, attrs)})
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	var groups strings.Builder
	for _, reg := range m.registry.All() {
		fmt.Fprintf(&groups, `<g class="region-group" data-region="%s" tabindex="0" role="button" aria-label="%s">`,
			escape(reg.ID), escape(reg.Name+" region — click to lock"))
		for _, code := range reg.Countries {
			for _, i := range m.byCountry[code] {
				sh := m.shapes[i]
				groups.WriteString(m.serialize(sh, withID(sh.attrs, "country-"+code)))
			}
		}
		groups.WriteString("</g>")
	}

	var out bytes.Buffer
	pos := int64(0)
	for _, e := range edits {
		out.Write(m.raw[pos:e.start])
		out.WriteString(e.text)
		pos = e.end
	}
	out.Write(m.raw[pos:m.rootEnd])
	out.WriteString(groups.String())
	out.Write(m.raw[m.rootEnd:])

	_, err := w.Write(out.Bytes())
	return err
}

// serialize rebuilds a shape's start tag from attrs and keeps its original
// children and end tag.
func (m *Map) serialize(sh shape, attrs []xml.Attr) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(qualified(sh.name))
	for _, a := range attrs {
		fmt.Fprintf(&b, ` %s="%s"`, qualified(a.Name), escape(a.Value))
	}
	if sh.selfClosing {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteString(">")
	b.Write(m.raw[sh.tagEnd:sh.end])
	return b.String()
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func withID(attrs []xml.Attr, id string) []xml.Attr {
	out := make([]xml.Attr, 0, len(attrs)+1)
	for _, a := range attrs {
		if a.Name.Local == "id" && a.Name.Space == "" {
			continue
		}
		out = append(out, a)
	}
	return append(out, xml.Attr{Name: xml.Name{Local: "id"}, Value: id})
}

func withClass(attrs []xml.Attr, class string) []xml.Attr {
	out := make([]xml.Attr, 0, len(attrs)+1)
	found := false
	for _, a := range attrs {
		if a.Name.Local == "class" && a.Name.Space == "" {
			found = true
			a.Value = strings.TrimSpace(a.Value + " " + class)
		}
		out = append(out, a)
	}
	if !found {
		out = append(out, xml.Attr{Name: xml.Name{Local: "class"}, Value: class})
	}
	return out
}
