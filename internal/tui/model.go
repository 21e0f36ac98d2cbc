// Package tui is the terminal map viewer. Every frame projects the loaded
// dataset through a Flinger sized to the map canvas.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"mapflinger/internal/geodata"
	"mapflinger/internal/icon"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	// zoom multiplies the level that fits the dataset into the canvas.
	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data  geodata.Data
	index *geodata.VertexIndex
	icons *icon.Extractor

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// details / icon table
	table tableMode
	tbl   table.Model
}

// Option configures a Model.
type Option func(*Model)

// WithIcons makes an icon sheet browsable from the viewer.
func WithIcons(e *icon.Extractor) Option {
	return func(m *Model) {
		m.icons = e
	}
}

func New(opts ...Option) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "mapflinger ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, opts ...Option) Model {
	m := New(opts...)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setData replaces the dataset and rebuilds the vertex index. Layers are
// focused on the richest geometry kind present.
func (m *Model) setData(d geodata.Data) {
	m.data = d
	m.index = geodata.NewVertexIndex(d)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.hovering, m.hoverHasGeo = false, false
	m.showPolys = len(d.Polygons) > 0
	m.showLines = len(d.Lines) > 0 && !m.showPolys
	m.showPoints = len(d.Points) > 0 && !m.showPolys
}
