// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "strings"

// PanelLabel identifies one of the two top-level panels.
type PanelLabel string

const (
	// PanelControl is the left-hand window presenting navigation controls.
	PanelControl PanelLabel = "left"
	// PanelContent is the right-hand window rendering the navigated page.
	PanelContent PanelLabel = "right"
)

// ContentHomeURL is the fixed page the content panel opens at startup.
const ContentHomeURL = "https://google.com"

// Valid reports whether the label names one of the known panels.
func (l PanelLabel) Valid() bool {
	return l == PanelControl || l == PanelContent
}

// DisplayName returns the label with its first letter upper-cased ("Right").
func (l PanelLabel) DisplayName() string {
	if l == "" {
		return ""
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}

// SourceKind tells where a panel gets its initial content from.
type SourceKind int

const (
	// SourceEmbedded loads a page bundled with the binary.
	SourceEmbedded SourceKind = iota
	// SourceExternal loads a remote URL.
	SourceExternal
)

// PanelSource is the initial content of a panel.
type PanelSource struct {
	Kind SourceKind
	URL  string // only for SourceExternal
}

// Rect is a window position and size in pixels.
type Rect struct {
	X, Y int
	W, H int
}

// PanelSpec describes how a panel window is created.
type PanelSpec struct {
	Label  PanelLabel
	Title  string
	Source PanelSource
	Bounds Rect
}

// DefaultPanels returns the fixed startup layout: control panel on the left,
// content panel on the right, side by side.
func DefaultPanels() []PanelSpec {
	return []PanelSpec{
		{
			Label:  PanelControl,
			Title:  "Control Panel",
			Source: PanelSource{Kind: SourceEmbedded},
			Bounds: Rect{X: 0, Y: 0, W: 300, H: 800},
		},
		{
			Label:  PanelContent,
			Title:  "Web Content",
			Source: PanelSource{Kind: SourceExternal, URL: ContentHomeURL},
			Bounds: Rect{X: 300, Y: 0, W: 900, H: 800},
		},
	}
}
