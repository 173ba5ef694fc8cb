package devtools

import (
	"strings"

	"github.com/gookit/color"

	"dungeonforge/pkg/engine/world"
)

// Map glyphs
const (
	IconWall     = '#'
	IconRoom     = '.'
	IconCorridor = '+'
)

var (
	ColorWall     = color.Style{color.FgGray}
	ColorRoom     = color.Style{color.FgWhite, color.OpBold}
	ColorCorridor = color.Style{color.FgYellow}
)

// glyphs lays the grid out as (2*width+1) x (2*height+1) glyphs: cells on
// odd rows and columns, the walls between them on even ones. The first row
// is the northern edge (highest y).
func glyphs(g *world.Grid) [][]rune {
	w, h := g.Width(), g.Height()
	rows := make([][]rune, 2*h+1)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(string(IconWall), 2*w+1))
	}

	g.ForEachCell(func(x, y int, cell *world.Cell) {
		if !cell.Carved {
			return
		}
		row, col := 2*(h-1-y)+1, 2*x+1
		rows[row][col] = cellIcon(cell)

		if cell.IsOpen(world.East) {
			rows[row][col+1] = passageIcon(cell, g.GetCellRelative(cell, world.East))
		}
		if cell.IsOpen(world.North) {
			rows[row-1][col] = passageIcon(cell, g.GetCellRelative(cell, world.North))
		}
	})
	return rows
}

func cellIcon(c *world.Cell) rune {
	if c.Room {
		return IconRoom
	}
	return IconCorridor
}

// passageIcon is a room glyph inside a room and a corridor glyph elsewhere
func passageIcon(a, b *world.Cell) rune {
	if a.Room && b != nil && b.Room {
		return IconRoom
	}
	return IconCorridor
}

// RenderASCII draws the grid with North at the top, one line per glyph row
func RenderASCII(g *world.Grid) string {
	var sb strings.Builder
	for _, row := range glyphs(g) {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderColor is RenderASCII with each glyph styled for a terminal
func RenderColor(g *world.Grid) string {
	var sb strings.Builder
	for _, row := range glyphs(g) {
		// Style runs of the same glyph together
		for start := 0; start < len(row); {
			end := start
			for end < len(row) && row[end] == row[start] {
				end++
			}
			sb.WriteString(glyphStyle(row[start]).Sprint(string(row[start:end])))
			start = end
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyphStyle(r rune) color.Style {
	switch r {
	case IconRoom:
		return ColorRoom
	case IconCorridor:
		return ColorCorridor
	default:
		return ColorWall
	}
}
