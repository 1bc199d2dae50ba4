package diagram

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pktviz/pktviz/pkg/errors"
)

// fieldLineRe matches the three field line forms:
//
//	0-15: "Source Port"
//	16: "Flag"
//	+8: "Checksum"
var fieldLineRe = regexp.MustCompile(`^(?:(\d+)(?:\s*-\s*(\d+))?|\+(\d+))\s*:\s*"([^"]*)"$`)

// Parse reads diagram source from r and returns the parsed Diagram.
// Parse only resolves syntax (including relative "+bits" ranges); range
// validity and contiguity are enforced later by the layout stage.
func Parse(r io.Reader) (*Diagram, error) {
	d := &Diagram{}
	prevEnd := -1
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "%%"):
			continue
		case line == "packet" || line == "packet-beta":
			// Header line kept for compatibility with other tools.
			continue
		case strings.HasPrefix(line, "title"):
			d.Title = strings.TrimSpace(strings.TrimPrefix(line, "title"))
			continue
		case strings.HasPrefix(line, "accTitle:"):
			d.AccTitle = strings.TrimSpace(strings.TrimPrefix(line, "accTitle:"))
			continue
		case strings.HasPrefix(line, "accDescr:"):
			d.AccDescr = strings.TrimSpace(strings.TrimPrefix(line, "accDescr:"))
			continue
		}

		f, err := parseFieldLine(line, prevEnd)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "line %d: %q", lineNo, line)
		}
		if err := errors.ValidateLabel(f.Label); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "line %d: %q", lineNo, line)
		}

		d.Fields = append(d.Fields, f)
		prevEnd = f.End
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read diagram source")
	}

	if len(d.Fields) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDiagram, "diagram contains no fields")
	}

	return d, nil
}

// ParseString parses diagram source from a string.
func ParseString(src string) (*Diagram, error) {
	return Parse(strings.NewReader(src))
}

// parseFieldLine parses one field line. prevEnd is the end bit of the
// previous field (-1 when there is none); it anchors relative "+bits" lines.
func parseFieldLine(line string, prevEnd int) (Field, error) {
	m := fieldLineRe.FindStringSubmatch(line)
	if m == nil {
		return Field{}, errors.New(errors.ErrCodeParse, `expected 'start-end: "Label"', 'start: "Label"' or '+bits: "Label"'`)
	}

	label := m[4]

	// Relative form: +bits
	if m[3] != "" {
		bits, err := strconv.Atoi(m[3])
		if err != nil {
			return Field{}, errors.Wrap(errors.ErrCodeParse, err, "bit count")
		}
		if bits < 1 {
			return Field{}, errors.New(errors.ErrCodeParse, "relative field must span at least 1 bit")
		}
		start := prevEnd + 1
		return Range(start, start+bits-1, label), nil
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return Field{}, errors.Wrap(errors.ErrCodeParse, err, "start bit")
	}

	// Single-bit form: end defaults to start.
	if m[2] == "" {
		return Bit(start, label), nil
	}

	end, err := strconv.Atoi(m[2])
	if err != nil {
		return Field{}, errors.Wrap(errors.ErrCodeParse, err, "end bit")
	}
	return Range(start, end, label), nil
}
