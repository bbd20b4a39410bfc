package beatmap

import (
	"bufio"
	"io"
	"strings"
)

// Document is a forward-only line cursor over one beatmap file. Sections
// appear in a fixed order in valid documents, so seeking never rewinds and
// no line is read twice.
type Document struct {
	scanner *bufio.Scanner
	line    int

	pending    string
	hasPending bool
}

// NewDocument wraps r in a line cursor positioned before the first line.
func NewDocument(r io.Reader) *Document {
	return &Document{scanner: bufio.NewScanner(r)}
}

// ReadLine consumes and returns the next line without its terminator.
// ok is false once the end of the document is reached.
func (d *Document) ReadLine() (line string, ok bool) {
	if d.hasPending {
		d.hasPending = false
		d.line++
		return d.pending, true
	}
	if !d.scanner.Scan() {
		return "", false
	}
	d.line++
	return d.scanner.Text(), true
}

// UnreadLine puts the last consumed line back so the next ReadLine yields
// it again. Sections share their terminating marker line: the timing point
// reader stops on the next section's marker, which the following seek
// still has to see. Only one line of pushback is held.
func (d *Document) UnreadLine(line string) {
	d.pending = line
	d.hasPending = true
	d.line--
}

// Line reports the 1-based number of the last line consumed.
func (d *Document) Line() int {
	return d.line
}

// SeekSection consumes lines until one containing the literal marker
// "[name]" (case sensitive) has been consumed. The next ReadLine yields the
// first content line of that section. Reaching the end of the document
// before the marker is a ParseError: the document is malformed or
// truncated, never an excuse for a silent short-read.
func (d *Document) SeekSection(name string) error {
	marker := "[" + name + "]"
	for {
		line, ok := d.ReadLine()
		if !ok {
			return &ParseError{
				Section: name,
				Line:    d.line,
				Msg:     "section marker " + marker + " not found",
			}
		}
		if strings.Contains(line, marker) {
			return nil
		}
	}
}
