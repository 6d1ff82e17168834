// Package world turns text maze layouts into the geometry the walker moves
// through. A layout is a grid of cells; every cell is two world units
// across, so cell (col, row) spans x in [2col, 2col+2) and z in [2row, 2row+2).
package world

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout characters.
const (
	CharWall  = '#'
	CharFloor = '.'
)

// startYaws maps start markers to the heading the player spawns with.
// Row 0 is the top of the layout and yaw 0 looks toward it.
var startYaws = map[rune]float64{
	'^': 0,
	'<': 90,
	'v': 180,
	'>': 270,
}

var (
	ErrEmptyLayout    = errors.New("world: layout has no rows")
	ErrNoStart        = errors.New("world: layout has no start marker")
	ErrMultipleStarts = errors.New("world: layout has more than one start marker")
)

// Cell addresses one grid square.
type Cell struct {
	Col, Row int
}

// Layout is a parsed maze layout.
type Layout struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Rows     []string // Normalized rows: walls and floors only, all Width long
	Start    Cell
	StartYaw float64
	Metadata map[string]string
	FilePath string
}

// yamlLayout is the on-disk layout format.
type yamlLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseLayout parses a YAML layout file.
func ParseLayout(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("world: yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, errors.New("world: layout has no id")
	}

	layout, err := ParseRows(yl.Rows)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %q: %w", yl.ID, err)
	}

	layout.ID = yl.ID
	layout.Name = yl.Name
	if layout.Name == "" {
		layout.Name = yl.ID
	}
	layout.Metadata = yl.Metadata
	return layout, nil
}

// ParseRows builds a layout from text rows. Short rows are padded with
// walls up to the widest row. Exactly one start marker is required.
func ParseRows(rows []string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, ErrEmptyLayout
	}

	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	if width == 0 {
		return Layout{}, ErrEmptyLayout
	}

	layout := Layout{
		Width:  width,
		Height: len(rows),
		Rows:   make([]string, len(rows)),
	}

	starts := 0
	for r, row := range rows {
		var b strings.Builder
		b.Grow(width)

		runes := []rune(row)
		for c := 0; c < width; c++ {
			ch := rune(CharWall)
			if c < len(runes) {
				ch = runes[c]
			}

			switch ch {
			case CharWall, ' ':
				b.WriteRune(CharWall)
			case CharFloor:
				b.WriteRune(CharFloor)
			default:
				yaw, ok := startYaws[ch]
				if !ok {
					return Layout{}, fmt.Errorf("world: unknown cell %q at row %d, col %d", ch, r, c)
				}
				starts++
				layout.Start = Cell{Col: c, Row: r}
				layout.StartYaw = yaw
				b.WriteRune(CharFloor)
			}
		}
		layout.Rows[r] = b.String()
	}

	switch starts {
	case 0:
		return Layout{}, ErrNoStart
	case 1:
		return layout, nil
	default:
		return Layout{}, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}
}

// Floors returns the number of walkable cells.
func (l Layout) Floors() int {
	n := 0
	for _, row := range l.Rows {
		n += strings.Count(row, string(CharFloor))
	}
	return n
}
