// Package report renders solver tables as text and JSON. It only reads
// finished tables.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"easybj/server/engine"
	"easybj/server/solver"
	"easybj/server/table"
)

const (
	colReset  = "\033[0m"
	colBold   = "\033[1m"
	colDim    = "\033[2m"
	colGreen  = "\033[32m"
	colRed    = "\033[31m"
	colYellow = "\033[33m"
	colMag    = "\033[35m"
	colCyan   = "\033[36m"
)

var titles = map[string]string{
	"initial":   "Initial deal probability",
	"dealer":    "Dealer outcome probability",
	"stand":     "Stand EV",
	"hit":       "Hit EV",
	"double":    "Double EV",
	"postsplit": "Post-split hand EV (no further split)",
	"split":     "Split EV",
	"optimal":   "Optimal EV",
	"strategy":  "Strategy",
}

type Options struct {
	Precision int
	Color     bool
	Lang      language.Tag
}

// Writer renders with one set of options.
type Writer struct {
	w     io.Writer
	opt   Options
	p     *message.Printer
	float string
}

func New(w io.Writer, opt Options) *Writer {
	if opt.Precision < 0 {
		opt.Precision = 0
	}
	if opt.Lang.IsRoot() {
		opt.Lang = language.English
	}
	return &Writer{
		w:     w,
		opt:   opt,
		p:     message.NewPrinter(opt.Lang),
		float: fmt.Sprintf("%%.%df", opt.Precision),
	}
}

func (rw *Writer) c(code, s string) string {
	if !rw.opt.Color {
		return s
	}
	return code + s + colReset
}
func (rw *Writer) bold(s string) string { return rw.c(colBold, s) }
func (rw *Writer) dim(s string) string  { return rw.c(colDim, s) }

// paint colours a strategy tag by its action.
func (rw *Writer) paint(tag string) string {
	t := strings.TrimSpace(tag)
	if t == "" {
		return tag
	}
	switch engine.Action(t[:1]) {
	case engine.Stand:
		return rw.c(colGreen, tag)
	case engine.Hit:
		return rw.c(colYellow, tag)
	case engine.Double:
		return rw.c(colCyan, tag)
	case engine.Split:
		return rw.c(colMag, tag)
	case engine.Surrender:
		return rw.c(colRed, tag)
	}
	return tag
}

// Number formats one value in the writer's locale. A "%" unit scales by 100.
func (rw *Writer) Number(v float64, unit string) string {
	if unit == "%" {
		return rw.p.Sprintf(rw.float, 100*v) + "%"
	}
	return rw.p.Sprintf(rw.float, v)
}

func (rw *Writer) cell(g table.Grid, row, col engine.Category) (string, bool, error) {
	v, err := g.Cell(row, col)
	if errors.Is(err, table.ErrUnset) {
		return "-", false, nil
	}
	if err != nil {
		return "", false, err
	}
	switch x := v.(type) {
	case float64:
		return rw.Number(x, g.Unit()), false, nil
	case string:
		return x, true, nil
	}
	return fmt.Sprint(v), false, nil
}

// Table prints a grid with the column codes across the top and one line per
// row label.
func (rw *Writer) Table(title string, g table.Grid) error {
	rows, cols := g.Rows(), g.Cols()
	cells := make([][]string, len(rows))
	tags := make([][]bool, len(rows))
	width := 2
	for _, c := range cols {
		width = max(width, len(c.String()))
	}
	for i, row := range rows {
		cells[i] = make([]string, len(cols))
		tags[i] = make([]bool, len(cols))
		for j, col := range cols {
			s, tag, err := rw.cell(g, row, col)
			if err != nil {
				return fmt.Errorf("%s %s,%s: %w", title, row, col, err)
			}
			cells[i][j], tags[i][j] = s, tag
			width = max(width, len([]rune(s)))
		}
	}

	var b strings.Builder
	b.WriteString(rw.bold(title))
	b.WriteByte('\n')
	b.WriteString("    ")
	for _, col := range cols {
		b.WriteString(" " + rw.dim(pad(col.String(), width)))
	}
	b.WriteByte('\n')
	for i, row := range rows {
		b.WriteString(rw.dim(fmt.Sprintf("%-4s", row.String())))
		for j := range cols {
			s := pad(cells[i][j], width)
			if tags[i][j] {
				s = rw.paint(s)
			}
			b.WriteString(" " + s)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(rw.w, b.String())
	return err
}

func pad(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}

func Title(name string) string {
	if t, ok := titles[name]; ok {
		return t
	}
	var k int
	if _, err := fmt.Sscanf(name, "resplit-%d", &k); err == nil {
		return fmt.Sprintf("Split EV with %d re-split(s) left", k)
	}
	return name
}

// Report prints the named tables (all of them when names is empty) followed
// by the player's advantage.
func (rw *Writer) Report(res *solver.Result, names []string) error {
	if len(names) == 0 {
		names = res.Tables()
	}
	for _, name := range names {
		g, ok := res.Grid(name)
		if !ok {
			return fmt.Errorf("%w: table %q", table.ErrKeyNotFound, name)
		}
		if err := rw.Table(Title(name), g); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(rw.w, "%s %s\n", rw.bold("Player advantage:"), rw.Number(res.Advantage, "%"))
	return err
}

// Mix prints the action shares, largest first.
func (rw *Writer) Mix(mix map[string]float64) error {
	tags := make([]string, 0, len(mix))
	for t := range mix {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if mix[tags[i]] != mix[tags[j]] {
			return mix[tags[i]] > mix[tags[j]]
		}
		return tags[i] < tags[j]
	})
	var b strings.Builder
	b.WriteString(rw.bold("Action mix over the initial deal:"))
	b.WriteByte('\n')
	for _, t := range tags {
		fmt.Fprintf(&b, "  %s %s\n", rw.paint(fmt.Sprintf("%-8s", t)), rw.Number(mix[t], "%"))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(rw.w, b.String())
	return err
}

// Advice prints one lookup result with every available option.
func (rw *Writer) Advice(a solver.Advice) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s vs dealer %s\n", rw.bold("Player"), a.Player, a.Dealer)
	if a.Settled {
		fmt.Fprintf(&b, "  settled, EV %s\n", rw.Number(a.EV, ""))
		_, err := io.WriteString(rw.w, b.String())
		return err
	}
	fmt.Fprintf(&b, "  play %s, EV %s\n", rw.paint(a.Action), rw.Number(a.EV, ""))
	for _, act := range []engine.Action{engine.Stand, engine.Hit, engine.Double, engine.Split, engine.Surrender} {
		if v, ok := a.Options[act]; ok {
			fmt.Fprintf(&b, "    %s %s\n", act, rw.Number(v, ""))
		}
	}
	_, err := io.WriteString(rw.w, b.String())
	return err
}
