// Package errs is a thin facade over cockroachdb/errors. Use cases mark
// failures with sentinel errors and handlers match them with errors.Is,
// while the full cause chain stays attached for logs.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg. Returns nil for a nil err so call sites can
// wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches sentinel to err so errors.Is(result, sentinel) holds without
// losing the original cause.
func Mark(err, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// ExtractStackLines renders err verbosely and returns at most maxLines lines
// of it, for structured log attachments.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
