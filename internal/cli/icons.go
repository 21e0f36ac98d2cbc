package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"mapflinger/internal/icon"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func (a *app) loadIcons(path string) (*icon.Extractor, error) {
	e, err := icon.Load(path, icon.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.log.WithField("sheet", path).Debugf("loaded %d icons", e.Len())
	return e, nil
}

func (a *app) runIcons(cmd *cobra.Command, args []string) error {
	e, err := a.loadIcons(args[0])
	if err != nil {
		return err
	}
	ids := args[1:]
	if len(ids) == 0 {
		ids = e.IDs()
	}
	var (
		rows    [][]string
		missing int
	)
	for _, id := range ids {
		ic, ok := e.Get(id)
		if !ok {
			a.log.WithField("id", id).Warn("icon not found")
			missing++
			continue
		}
		rows = append(rows, []string{ic.ID, strconv.Itoa(ic.X), strconv.Itoa(ic.Y), ic.Path})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "X", "Y", "PATH").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	cmd.Printf("%s\n", t.String())
	if missing > 0 {
		return fmt.Errorf("%d of %d icons not found", missing, len(ids))
	}
	return nil
}
