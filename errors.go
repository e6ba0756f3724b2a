package memoforge

import (
	"fmt"
	"strings"

	"github.com/memoforge/memoforge/schema"
)

// ValidationFailure is returned when input fails schema validation. It
// carries every violation found in the pass, never just the first, so
// callers can present a complete report.
type ValidationFailure struct {
	Errors []schema.Error
}

func (e *ValidationFailure) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("input validation failed: %s", e.Errors[0].Message)
	}
	messages := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("input validation failed with %d errors: %s",
		len(e.Errors), strings.Join(messages, "; "))
}
