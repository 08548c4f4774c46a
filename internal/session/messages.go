package session

import (
	"github.com/ziadkadry99/euromap/internal/dots"
)

// Inbound message types.
const (
	TypeEnter   = "enter"
	TypeLeave   = "leave"
	TypeFocus   = "focus"
	TypeBlur    = "blur"
	TypeClick   = "click"
	TypeKey     = "key"
	TypeEscape  = "escape"
	TypeOutside = "outside"
	TypeToggle  = "toggle"
)

// Outbound message types.
const (
	TypeHighlight = "highlight"
	TypeFactsheet = "factsheet"
	TypeDots      = "dots"
	TypeLock      = "lock"
	TypeViewBox   = "viewbox"
	TypeError     = "error"
)

// Inbound is a browser event forwarded over the socket.
type Inbound struct {
	Type    string `json:"type"`
	Region  string `json:"region,omitempty"`
	Key     string `json:"key,omitempty"`
	Source  string `json:"source,omitempty"`  // "map" or "legend"
	Section string `json:"section,omitempty"` // toggle target
}

// Outbound is a view update sent to the browser.
type Outbound struct {
	Type    string     `json:"type"`
	Session string     `json:"session"`
	Region  string     `json:"region,omitempty"`
	Color   string     `json:"color,omitempty"`
	HTML    string     `json:"html,omitempty"`
	Dots    []dots.Dot `json:"dots,omitempty"`
	ViewBox string     `json:"viewbox,omitempty"`
	Locked  string     `json:"locked,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// needsRegion reports whether an inbound type must name a region.
func needsRegion(t string) bool {
	switch t {
	case TypeEnter, TypeLeave, TypeFocus, TypeBlur, TypeClick, TypeKey:
		return true
	}
	return false
}
