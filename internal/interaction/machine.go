// Package interaction holds the map's hover and lock state machine. It owns
// the active and locked region, drives the viewport animator and pushes
// every visible change through a View.
package interaction

import (
	"log/slog"
	"time"

	"github.com/paulmach/orb"

	"github.com/ziadkadry99/euromap/internal/dots"
	"github.com/ziadkadry99/euromap/internal/factsheet"
	"github.com/ziadkadry99/euromap/internal/regions"
	"github.com/ziadkadry99/euromap/internal/viewport"
)

// Mode is the coarse interaction state.
type Mode int

const (
	Idle Mode = iota
	Hovering
	Locked
)

func (m Mode) String() string {
	switch m {
	case Hovering:
		return "hovering"
	case Locked:
		return "locked"
	default:
		return "idle"
	}
}

// State is a snapshot of the machine.
type State struct {
	Active   string
	Locked   string
	Viewport viewport.Rect // last applied viewBox
	Target   viewport.Rect // where the viewBox is heading
}

// Mode derives the coarse state from the snapshot.
func (s State) Mode() Mode {
	switch {
	case s.Locked != "":
		return Locked
	case s.Active != "":
		return Hovering
	default:
		return Idle
	}
}

// View receives the machine's output. Highlight(nil) and Dots("", nil)
// clear what was shown before.
type View interface {
	Highlight(region *regions.Region)
	Factsheet(sheet *factsheet.Sheet)
	Dots(regionID string, d []dots.Dot)
	LockIndicator(locked string)
	Viewport(r viewport.Rect)
}

// RegionSource resolves region ids.
type RegionSource interface {
	Get(id string) (*regions.Region, bool)
}

// SheetRenderer builds factsheets.
type SheetRenderer interface {
	Render(regionID, locked string) (*factsheet.Sheet, bool)
	RenderEmpty() *factsheet.Sheet
}

// BoundsSource returns the rendered bounds of a region.
type BoundsSource interface {
	RegionBounds(regionID string) (orb.Bound, bool)
}

// DotSource computes the club overlay for a region.
type DotSource interface {
	Compute(regionID string) []dots.Dot
}

// Machine is the interaction state machine. It is not safe for concurrent
// use; one goroutine drives both the transitions and the scheduler.
type Machine struct {
	regions RegionSource
	sheets  SheetRenderer
	bounds  BoundsSource
	view    View
	dots    DotSource
	logger  *slog.Logger

	zoom    viewport.ZoomParams
	zoomIn  time.Duration
	zoomOut time.Duration

	anim   *viewport.Animator
	active string
	locked string
	sheet  *factsheet.Sheet
}

// Option configures a Machine.
type Option func(*Machine)

// WithDots enables the club dot overlay.
func WithDots(src DotSource) Option { return func(m *Machine) { m.dots = src } }

// WithZoom overrides the zoom viewport parameters.
func WithZoom(p viewport.ZoomParams) Option { return func(m *Machine) { m.zoom = p } }

// WithDurations overrides the zoom-in and reset animation lengths.
func WithDurations(in, out time.Duration) Option {
	return func(m *Machine) {
		m.zoomIn = in
		m.zoomOut = out
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(m *Machine) { m.logger = l } }

// New returns a machine in the idle state with the default viewport.
func New(reg RegionSource, sheets SheetRenderer, bounds BoundsSource, sched viewport.Scheduler, view View, opts ...Option) *Machine {
	m := &Machine{
		regions: reg,
		sheets:  sheets,
		bounds:  bounds,
		view:    view,
		logger:  slog.Default(),
		zoom:    viewport.DefaultZoom,
		zoomIn:  viewport.ZoomInDuration,
		zoomOut: viewport.ZoomOutDuration,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.anim = viewport.NewAnimator(sched, viewport.Default, view.Viewport)
	m.sheet = sheets.RenderEmpty()
	return m
}

// State returns a snapshot.
func (m *Machine) State() State {
	return State{
		Active:   m.active,
		Locked:   m.locked,
		Viewport: m.anim.Current(),
		Target:   m.anim.Target(),
	}
}

// Sheet returns the factsheet currently shown.
func (m *Machine) Sheet() *factsheet.Sheet { return m.sheet }

// PointerEnter previews a region unless a lock is held.
func (m *Machine) PointerEnter(regionID string) { m.preview(regionID) }

// Focus is the keyboard equivalent of PointerEnter.
func (m *Machine) Focus(regionID string) { m.preview(regionID) }

// PointerLeave clears the preview unless a lock is held.
func (m *Machine) PointerLeave(regionID string) { m.endPreview(regionID) }

// Blur is the keyboard equivalent of PointerLeave.
func (m *Machine) Blur(regionID string) { m.endPreview(regionID) }

// Click toggles the lock on a region.
func (m *Machine) Click(regionID string) { m.toggleLock(regionID) }

// KeyActivate handles a key pressed on a focused region. Enter and Space
// toggle the lock, Escape unlocks. It reports whether the key was used.
func (m *Machine) KeyActivate(regionID, key string) bool {
	switch key {
	case "Enter", " ", "Space", "Spacebar":
		m.toggleLock(regionID)
	case "Escape", "Esc":
		m.Escape()
	default:
		return false
	}
	return true
}

// Escape unlocks from any state.
func (m *Machine) Escape() { m.unlock() }

// ClickOutside unlocks when the map background is clicked during a lock.
func (m *Machine) ClickOutside() {
	if m.locked == "" {
		return
	}
	m.unlock()
}

func (m *Machine) preview(regionID string) {
	if m.locked != "" {
		return
	}
	region, ok := m.lookup(regionID)
	if !ok {
		return
	}
	m.activate(region)
}

func (m *Machine) endPreview(regionID string) {
	if m.locked != "" {
		return
	}
	if _, ok := m.lookup(regionID); !ok {
		return
	}
	m.deactivate()
}

func (m *Machine) toggleLock(regionID string) {
	region, ok := m.lookup(regionID)
	if !ok {
		return
	}
	if m.locked == region.ID {
		m.unlock()
		return
	}

	m.locked = region.ID
	if m.active == region.ID {
		// Already previewed: only the Pinned badge changes.
		m.showSheet(region.ID)
	} else {
		m.activate(region)
	}
	m.zoomTo(region.ID)
	m.view.LockIndicator(m.locked)
	m.logger.Debug("region locked", "region", region.ID)
}

func (m *Machine) unlock() {
	prev := m.locked
	m.locked = ""
	m.deactivate()
	m.anim.AnimateTo(viewport.Default, m.zoomOut)
	m.view.LockIndicator("")
	if prev != "" {
		m.logger.Debug("region unlocked", "region", prev)
	}
}

func (m *Machine) activate(region *regions.Region) {
	if m.active == region.ID {
		return
	}
	m.active = region.ID
	m.view.Highlight(region)
	m.showSheet(region.ID)
	if m.dots != nil {
		m.view.Dots(region.ID, m.dots.Compute(region.ID))
	}
}

func (m *Machine) deactivate() {
	m.active = ""
	m.view.Highlight(nil)
	m.sheet = m.sheets.RenderEmpty()
	m.view.Factsheet(m.sheet)
	if m.dots != nil {
		m.view.Dots("", nil)
	}
}

func (m *Machine) showSheet(regionID string) {
	sheet, ok := m.sheets.Render(regionID, m.locked)
	if !ok {
		sheet = m.sheets.RenderEmpty()
	}
	m.sheet = sheet
	m.view.Factsheet(sheet)
}

func (m *Machine) zoomTo(regionID string) {
	b, ok := m.bounds.RegionBounds(regionID)
	if !ok {
		m.logger.Warn("region has no shapes to zoom to", "region", regionID)
		// Do not leave the view zoomed on a previously locked region.
		if m.anim.Target() != viewport.Default {
			m.anim.AnimateTo(viewport.Default, m.zoomOut)
		}
		return
	}
	m.anim.AnimateTo(viewport.ComputeZoom(b, m.zoom), m.zoomIn)
}

func (m *Machine) lookup(regionID string) (*regions.Region, bool) {
	region, ok := m.regions.Get(regionID)
	if !ok {
		m.logger.Debug("ignoring unknown region", "region", regionID)
	}
	return region, ok
}
