// Package level reads text maps and turns them into tiles and a player.
//
// A map is plain text, one row per line:
//
//	.  floor
//	$  wall
//	@  player start (exactly one)
//
// Any other character is treated as floor. Short rows are padded with '.'
// so that the grid is always rectangular.
package level

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Map characters
const (
	Floor       = '.'
	Wall        = '$'
	PlayerStart = '@'
)

// Grid is a rectangular level map indexed as [row][column]
type Grid [][]rune

// Load reads a level file from disk
func Load(path string) (Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level file %s: %w", path, err)
	}
	defer file.Close()

	grid, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	return grid, nil
}

// Parse reads a level from r. Trailing whitespace is stripped from every
// line, then rows are padded with Floor to the width of the longest row.
func Parse(r io.Reader) (Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRightFunc(scanner.Text(), unicode.IsSpace))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return Pad(rows), nil
}

// Pad builds a rectangular grid from rows of differing length
func Pad(rows []string) Grid {
	maxWidth := 0
	runes := make([][]rune, len(rows))
	for i, row := range rows {
		runes[i] = []rune(row)
		if len(runes[i]) > maxWidth {
			maxWidth = len(runes[i])
		}
	}

	grid := make(Grid, len(rows))
	for y, row := range runes {
		line := make([]rune, maxWidth)
		copy(line, row)
		for x := len(row); x < maxWidth; x++ {
			line[x] = Floor
		}
		grid[y] = line
	}
	return grid
}

// Width returns the number of columns
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows
func (g Grid) Height() int {
	return len(g)
}

// At returns the character at column x, row y
func (g Grid) At(x, y int) (rune, bool) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return 0, false
	}
	return g[y][x], true
}

// Set replaces the character at column x, row y
func (g Grid) Set(x, y int, r rune) {
	if _, ok := g.At(x, y); !ok {
		return
	}
	g[y][x] = r
}

// String renders the grid back to its text form
func (g Grid) String() string {
	var sb strings.Builder
	for i, row := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
