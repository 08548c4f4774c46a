// Package session runs one interactive map per websocket connection. Each
// session owns an interaction.Machine and a frame queue; browser events come
// in as JSON and view updates go back out the same way.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/ziadkadry99/euromap/internal/dots"
	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/interaction"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/viewport"
)

// DefaultFrameRate is how often animation frames are flushed per second.
const DefaultFrameRate = 60

// Deps are the shared, read-only collaborators every session uses.
type Deps struct {
	Regions   *regions.Registry
	Sheets    interaction.SheetRenderer
	Bounds    interaction.BoundsSource
	Dots      interaction.DotSource // nil disables the club overlay
	Zoom      viewport.ZoomParams
	ZoomIn    time.Duration
	ZoomOut   time.Duration
	FrameRate int
	Logger    *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Zoom == (viewport.ZoomParams{}) {
		d.Zoom = viewport.DefaultZoom
	}
	if d.ZoomIn <= 0 {
		d.ZoomIn = viewport.ZoomInDuration
	}
	if d.ZoomOut <= 0 {
		d.ZoomOut = viewport.ZoomOutDuration
	}
	if d.FrameRate <= 0 {
		d.FrameRate = DefaultFrameRate
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// Session is the per-connection state. All fields are owned by the
// goroutine running Run.
type Session struct {
	id      string
	deps    Deps
	logger  *slog.Logger
	queue   *viewport.FrameQueue
	machine *interaction.Machine
	out     chan<- Outbound
}

// New builds a session that emits its updates on out.
func New(id string, deps Deps, clock viewport.Clock, out chan<- Outbound) *Session {
	deps = deps.withDefaults()
	s := &Session{
		id:     id,
		deps:   deps,
		logger: deps.Logger.With("session", id),
		queue:  viewport.NewFrameQueue(clock),
		out:    out,
	}
	opts := []interaction.Option{
		interaction.WithZoom(deps.Zoom),
		interaction.WithDurations(deps.ZoomIn, deps.ZoomOut),
		interaction.WithLogger(s.logger),
	}
	if deps.Dots != nil {
		opts = append(opts, interaction.WithDots(deps.Dots))
	}
	s.machine = interaction.New(deps.Regions, deps.Sheets, deps.Bounds, s.queue, &view{s: s}, opts...)
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// State returns the machine snapshot.
func (s *Session) State() interaction.State { return s.machine.State() }

// Run processes inbound messages and flushes animation frames until in is
// closed or ctx is done. It sends the initial (empty) factsheet first.
func (s *Session) Run(ctx context.Context, in <-chan Inbound) {
	s.sendSheet(s.machine.Sheet())

	ticker := time.NewTicker(time.Second / time.Duration(s.deps.FrameRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			s.Handle(msg)
		case now := <-ticker.C:
			s.queue.Flush(now)
		}
	}
}

// Flush runs pending animation frames at now.
func (s *Session) Flush(now time.Time) int { return s.queue.Flush(now) }

// Handle applies one inbound message.
func (s *Session) Handle(msg Inbound) {
	if msg.Type == "" {
		s.sendError("invalid message format")
		return
	}
	if needsRegion(msg.Type) && msg.Region == "" {
		s.sendError("region is required")
		return
	}
	s.logger.Debug("event", "type", msg.Type, "region", msg.Region, "source", msg.Source)

	m := s.machine
	switch msg.Type {
	case TypeEnter:
		m.PointerEnter(msg.Region)
	case TypeLeave:
		m.PointerLeave(msg.Region)
	case TypeFocus:
		m.Focus(msg.Region)
	case TypeBlur:
		m.Blur(msg.Region)
	case TypeClick:
		m.Click(msg.Region)
	case TypeKey:
		m.KeyActivate(msg.Region, msg.Key)
	case TypeEscape:
		m.Escape()
	case TypeOutside:
		m.ClickOutside()
	case TypeToggle:
		sheet := m.Sheet()
		if !sheet.Toggle(msg.Section) {
			s.sendError("unknown section: " + msg.Section)
			return
		}
		s.sendSheet(sheet)
	default:
		s.sendError("unknown message type: " + msg.Type)
	}
}

func (s *Session) send(msg Outbound) {
	msg.Session = s.id
	s.out <- msg
}

func (s *Session) sendError(text string) {
	s.send(Outbound{Type: TypeError, Error: text})
}

func (s *Session) sendSheet(sheet *factsheet.Sheet) {
	html, err := factsheet.HTML(sheet)
	if err != nil {
		s.logger.Error("rendering factsheet", "error", err)
		s.sendError("rendering factsheet failed")
		return
	}
	s.send(Outbound{Type: TypeFactsheet, Region: sheet.RegionID, HTML: html})
}

// view adapts machine output to outbound messages.
type view struct{ s *Session }

func (v *view) Highlight(r *regions.Region) {
	if r == nil {
		v.s.send(Outbound{Type: TypeHighlight})
		return
	}
	v.s.send(Outbound{Type: TypeHighlight, Region: r.ID, Color: r.Color})
}

func (v *view) Factsheet(sheet *factsheet.Sheet) { v.s.sendSheet(sheet) }

func (v *view) Dots(regionID string, d []dots.Dot) {
	v.s.send(Outbound{Type: TypeDots, Region: regionID, Dots: d})
}

func (v *view) LockIndicator(locked string) {
	v.s.send(Outbound{Type: TypeLock, Locked: locked})
}

func (v *view) Viewport(r viewport.Rect) {
	v.s.send(Outbound{Type: TypeViewBox, ViewBox: r.String()})
}
