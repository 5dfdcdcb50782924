package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr to err's unwrap chain. The mark must stay
// reachable by the standard library's errors.Is, which is what handlers
// match on; cr.Mark alone only registers with cockroach's own Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(cr.Join(err, markErr), markErr)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
