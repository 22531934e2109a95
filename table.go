package tablefy

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Table accumulates a header row and data rows and renders them. The zero
// value is not usable; create tables with [NewTable].
type Table struct {
	header    []string
	rows      [][]string
	title     string
	caption   string
	border    BorderStyle
	aligns    []Alignment
	maxWidths []int
	numbered  bool
	numHeader string
}

// NewTable returns an empty table with rounded borders.
func NewTable() *Table {
	return &Table{border: BorderRounded}
}

// SetHeader replaces the header row.
func (t *Table) SetHeader(header []string) {
	t.header = slices.Clone(header)
}

// AddRow appends a data row.
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, slices.Clone(row))
}

// Header returns a copy of the header row.
func (t *Table) Header() []string {
	return slices.Clone(t.header)
}

// Rows returns a copy of the data rows.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// SetTitle renders a title above the table. Ignored by [BorderNone].
func (t *Table) SetTitle(title string) { t.title = title }

// SetCaption renders a line below the table.
func (t *Table) SetCaption(caption string) { t.caption = caption }

// SetBorder sets the border style.
func (t *Table) SetBorder(style BorderStyle) { t.border = style }

// SetAlignments sets per-column alignment. Missing columns align left.
func (t *Table) SetAlignments(aligns []Alignment) { t.aligns = slices.Clone(aligns) }

// SetMaxWidths sets maximum column widths. Cells exceeding the max are
// truncated with "...". A zero value means no limit for that column.
func (t *Table) SetMaxWidths(widths []int) { t.maxWidths = slices.Clone(widths) }

// SetNumbered prepends a right-aligned row number column headed by header.
func (t *Table) SetNumbered(header string) {
	t.numbered = true
	t.numHeader = header
}

// String renders the table as text.
func (t *Table) String() string {
	var buf bytes.Buffer
	if err := t.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Render writes the table as text to w. A table with neither header nor
// rows writes nothing.
func (t *Table) Render(w io.Writer) error {
	if len(t.header) == 0 && len(t.rows) == 0 {
		return nil
	}

	header, rows, aligns, maxWidths := t.header, t.rows, t.aligns, t.maxWidths
	if t.numbered {
		if len(header) > 0 {
			header = append([]string{t.numHeader}, header...)
		}
		numbered := make([][]string, len(rows))
		for i, row := range rows {
			numbered[i] = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = numbered
		aligns = append([]Alignment{AlignRight}, aligns...)
		if len(maxWidths) > 0 {
			maxWidths = append([]int{0}, maxWidths...)
		}
	}

	numCols := colCount(header, rows)
	widths := computeWidths(numCols, header, rows)
	for i, max := range maxWidths {
		if i < numCols && max > 0 && widths[i] > max {
			widths[i] = max
		}
	}
	aligns = extendAligns(aligns, numCols)

	var err error
	if t.border == BorderNone {
		err = renderPlainTable(w, header, rows, widths, aligns)
	} else {
		err = renderBorderedTable(w, t.title, header, rows, widths, aligns, t.border)
	}
	if err != nil {
		return err
	}

	if t.caption != "" {
		if _, err := fmt.Fprintln(w, t.caption); err != nil {
			return err
		}
	}
	return nil
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment) error {
	if len(header) > 0 {
		if err := writePlainRow(w, header, widths, aligns); err != nil {
			return err
		}
		if err := writePlainSep(w, widths); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = formatTableCell(cell, width, aligns[i])
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, title string, header []string, rows [][]string, widths []int, aligns []Alignment, style BorderStyle) error {
	bc, ok := borderSets[style]
	if !ok {
		bc = borderSets[BorderRounded]
	}

	if title != "" {
		// Full-width top border (no column separators).
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2 // subtract 1-space padding on each side
		padded := alignCell(title, inner, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if len(header) > 0 {
		if err := drawBorderedRow(w, header, widths, aligns, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}

	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(formatTableCell(cell, width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
