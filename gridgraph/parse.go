package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathgrid/core"
)

// Text format, one character per cell.
const (
	CharEmpty = '.'
	CharStart = 'S'
	CharEnd   = 'E'
	CharWall  = '#'
)

var roleChars = [...]byte{
	core.Empty: CharEmpty,
	core.Start: CharStart,
	core.End:   CharEnd,
	core.Wall:  CharWall,
}

// roleOf maps a text character to its Role.
func roleOf(c rune) (core.Role, bool) {
	switch c {
	case CharEmpty:
		return core.Empty, true
	case CharStart:
		return core.Start, true
	case CharEnd:
		return core.End, true
	case CharWall:
		return core.Wall, true
	}

	return 0, false
}

// Parse reads a grid in text form: one row per line, '.' empty, 'S' start,
// 'E' end, '#' wall. Surrounding whitespace and blank lines are ignored.
func Parse(r io.Reader) (*RoleGrid, error) {
	var rows [][]core.Role
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]core.Role, 0, len(text))
		for col, c := range text {
			role, ok := roleOf(c)
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownRole, c, line, col+1)
			}
			row = append(row, role)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return NewRoleGrid(rows)
}

// ParseString is Parse over a string.
func ParseString(s string) (*RoleGrid, error) {
	return Parse(strings.NewReader(s))
}

// ParseRows parses one string per row, as sent by API clients.
func ParseRows(rows []string) (*RoleGrid, error) {
	return ParseString(strings.Join(rows, "\n"))
}
