package beatmap

import "fmt"

// ParseError describes a malformed or truncated beatmap document. It is
// fatal for the document it occurred in and carries enough position
// information to point at the offending line.
type ParseError struct {
	Section string
	Line    int
	Msg     string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("beatmap: line %d", e.Line)
	if e.Section != "" {
		msg += fmt.Sprintf(" [%s]", e.Section)
	}
	msg += ": " + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
