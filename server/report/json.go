package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"easybj/server/solver"
	"easybj/server/table"
)

// Grid is the JSON shape of one table. Unset cells are null.
type Grid struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Unit  string   `json:"unit,omitempty"`
	Cols  []string `json:"cols"`
	Rows  []string `json:"rows"`
	Cells [][]any  `json:"cells"`
}

type Export struct {
	Advantage float64 `json:"advantage"`
	Tables    []Grid  `json:"tables"`
}

func ExportGrid(name string, g table.Grid) (Grid, error) {
	out := Grid{Name: name, Title: Title(name), Unit: g.Unit()}
	for _, c := range g.Cols() {
		out.Cols = append(out.Cols, c.String())
	}
	for _, row := range g.Rows() {
		out.Rows = append(out.Rows, row.String())
		line := make([]any, 0, len(out.Cols))
		for _, col := range g.Cols() {
			v, err := g.Cell(row, col)
			switch {
			case errors.Is(err, table.ErrUnset):
				v = nil
			case err != nil:
				return Grid{}, fmt.Errorf("%s %s,%s: %w", name, row, col, err)
			}
			line = append(line, v)
		}
		out.Cells = append(out.Cells, line)
	}
	return out, nil
}

// ExportAll collects the named tables, or all of them when names is empty.
func ExportAll(res *solver.Result, names []string) (Export, error) {
	if len(names) == 0 {
		names = res.Tables()
	}
	out := Export{Advantage: res.Advantage}
	for _, name := range names {
		g, ok := res.Grid(name)
		if !ok {
			return Export{}, fmt.Errorf("%w: table %q", table.ErrKeyNotFound, name)
		}
		eg, err := ExportGrid(name, g)
		if err != nil {
			return Export{}, err
		}
		out.Tables = append(out.Tables, eg)
	}
	return out, nil
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
