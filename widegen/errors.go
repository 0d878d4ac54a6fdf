package widegen

import (
	"errors"
	"fmt"
)

// ErrNoDirectives is returned if a source file contains no wide directives.
var ErrNoDirectives = errors.New("widegen: no wide directives found")

// ErrOutdated is returned by Verify if a generated file differs from the file on disk.
var ErrOutdated = errors.New("widegen: generated file is outdated")

// GenError represents a problem with a single constant marked for generation.
// Errors are accumulated over a source file and reported together.
type GenError struct {
	Position string // position of the constant in the source file
	Const    string // name of the constant (may be empty)
	Issue    string // human-readable description of the issue
}

// Error implements the error interface.
func (e GenError) Error() string {
	if e.Const != "" {
		return fmt.Sprintf("%s: constant %s: %s", e.Position, e.Const, e.Issue)
	}
	return fmt.Sprintf("%s: %s", e.Position, e.Issue)
}

// errorCollector accumulates errors during generation.
type errorCollector struct {
	errors []GenError
}

func (ec *errorCollector) addError(pos string, name string, issue string) {
	ec.errors = append(ec.errors, GenError{
		Position: pos,
		Const:    name,
		Issue:    issue,
	})
}

func (ec *errorCollector) hasErrors() bool {
	return len(ec.errors) > 0
}

// err combines all collected errors into one, or returns nil.
// Single errors are retrievable with errors.As.
func (ec *errorCollector) err() error {
	if !ec.hasErrors() {
		return nil
	}
	errs := make([]error, len(ec.errors))
	for i, e := range ec.errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}
