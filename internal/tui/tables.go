package tui

import (
	"fmt"
	"path/filepath"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"

	"mapflinger/internal/geo"
	"mapflinger/internal/icon"
)

type tableMode int

const (
	tableNone tableMode = iota
	tableDetails
	tableIcons
)

// iconPathWidth caps the path column of the icon table.
const iconPathWidth = 32

// toggleTable switches the table overlay to mode, or hides it when mode is
// already shown.
func (m *Model) toggleTable(mode tableMode) {
	if m.table == mode {
		m.table = tableNone
		return
	}
	m.table = mode
	m.refreshTable()
}

// refreshTable rebuilds the table for the current mode. An empty table
// hides the overlay instead.
func (m *Model) refreshTable() {
	var (
		cols []table.Column
		rows []table.Row
	)
	switch m.table {
	case tableDetails:
		cols, rows = m.detailsTable()
	case tableIcons:
		cols, rows = iconTable(m.icons)
	}
	if len(rows) == 0 {
		if m.table == tableIcons {
			m.status = "no icon sheet loaded"
		} else {
			m.status = "no dataset loaded"
		}
		m.table = tableNone
		return
	}
	// clear rows first so the table never renders rows wider than its columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// detailsTable summarises the dataset and the projection of the last frame.
func (m *Model) detailsTable() ([]table.Column, []table.Row) {
	if m.data.Empty() {
		return nil, nil
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	rows := []table.Row{
		{"name", name},
		{"bbox", m.data.Box().String()},
		{"points", fmt.Sprint(len(m.data.Points))},
		{"lines", fmt.Sprint(len(m.data.Lines))},
		{"polygons", fmt.Sprint(len(m.data.Polygons))},
	}
	if m.index != nil {
		rows = append(rows, table.Row{"vertices", fmt.Sprint(m.index.Len())})
	}
	lo := m.layout()
	if f, ok := m.viewport(lo.mapW, lo.mapH); ok {
		rows = append(rows,
			table.Row{"zoom level", fmt.Sprintf("%.3f", f.Zoom())},
			table.Row{"px/m at center", fmt.Sprintf("%.6g", f.ScaleAtCenter())},
		)
		// pixel rows grow downward, so the corners come back flipped
		visible := geo.NewBox(m.fromMicro(f, 0, 0), m.fromMicro(f, lo.mapW*2-1, lo.mapH*4-1))
		rows = append(rows, table.Row{"visible", visible.String()})
	}
	cols := []table.Column{{Title: "key", Width: 16}, {Title: "value", Width: 44}}
	return cols, rows
}

// iconTable lists the icons of e sorted by id.
func iconTable(e *icon.Extractor) ([]table.Column, []table.Row) {
	if e == nil || e.Len() == 0 {
		return nil, nil
	}
	idW := len("id")
	rows := make([]table.Row, 0, e.Len())
	for _, id := range e.IDs() {
		ic, _ := e.Get(id)
		path := runewidth.Truncate(ic.Path, iconPathWidth, "…")
		rows = append(rows, table.Row{ic.ID, fmt.Sprint(ic.X), fmt.Sprint(ic.Y), path})
		idW = max(idW, runewidth.StringWidth(ic.ID))
	}
	cols := []table.Column{
		{Title: "id", Width: min(idW, 24)},
		{Title: "x", Width: 5},
		{Title: "y", Width: 5},
		{Title: "path", Width: iconPathWidth},
	}
	return cols, rows
}
