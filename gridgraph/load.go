package gridgraph

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Row-string symbols accepted in the "rows" document form.
const (
	freeSymbol    = '.'
	blockedSymbol = '#'
)

// gridDocument is the YAML shape of a grid: exactly one of Cells or Rows.
type gridDocument struct {
	Cells [][]int  `yaml:"cells,omitempty"`
	Rows  []string `yaml:"rows,omitempty"`
}

// Decode reads one YAML grid document from r. Two forms are accepted:
//
//	cells:            rows:
//	  - [0, 1, 0]       - ".#."
//	  - [0, 0, 0]       - "..."
//
// In the rows form '.' and '0' are free, '#' and '1' are blocked.
// Returns ErrGridFile when the document is empty, unparsable or carries
// both or neither form; otherwise the NewGrid errors apply.
func Decode(r io.Reader) (*Grid, error) {
	var doc gridDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrGridFile)
		}
		return nil, fmt.Errorf("%w: %v", ErrGridFile, err)
	}
	return doc.grid()
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open grid file: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func (doc gridDocument) grid() (*Grid, error) {
	switch {
	case doc.Cells != nil && doc.Rows != nil:
		return nil, fmt.Errorf("%w: both cells and rows given", ErrGridFile)
	case doc.Cells != nil:
		return NewGrid(doc.Cells)
	case doc.Rows != nil:
		values, err := parseRows(doc.Rows)
		if err != nil {
			return nil, err
		}
		return NewGrid(values)
	default:
		return nil, fmt.Errorf("%w: one of cells or rows is required", ErrGridFile)
	}
}

func parseRows(rows []string) ([][]int, error) {
	values := make([][]int, len(rows))
	for r, line := range rows {
		symbols := []rune(line)
		row := make([]int, len(symbols))
		for c, ch := range symbols {
			switch ch {
			case freeSymbol, '0':
				row[c] = Free
			case blockedSymbol, '1':
				row[c] = Blocked
			default:
				return nil, fmt.Errorf("%w: symbol %q at (%d, %d)", ErrBadCellValue, ch, r, c)
			}
		}
		values[r] = row
	}
	return values, nil
}

// MarshalYAML encodes the grid in the rows form, so Decode round-trips it.
func (g *Grid) MarshalYAML() (interface{}, error) {
	rows := make([]string, g.height)
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		sb.Reset()
		for c := 0; c < g.width; c++ {
			if g.cells[r*g.width+c] == Blocked {
				sb.WriteRune(blockedSymbol)
			} else {
				sb.WriteRune(freeSymbol)
			}
		}
		rows[r] = sb.String()
	}
	return gridDocument{Rows: rows}, nil
}

// UnmarshalYAML lets a grid be embedded inline in larger YAML documents.
func (g *Grid) UnmarshalYAML(value *yaml.Node) error {
	var doc gridDocument
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrGridFile, err)
	}
	decoded, err := doc.grid()
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}
