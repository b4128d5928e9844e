package engine

import (
	"fmt"

	"github.com/abhisek/mathforge/internal/catalog"
)

// NoTemplatesAvailableError reports that the selection cascade exhausted all
// fallbacks without finding a candidate template.
type NoTemplatesAvailableError struct {
	Difficulty  int
	TopicFilter string
	Domain      catalog.CognitiveDomain
}

func (e *NoTemplatesAvailableError) Error() string {
	msg := fmt.Sprintf("no templates available for difficulty %d", e.Difficulty)
	if e.TopicFilter != "" {
		msg += fmt.Sprintf(", topic filter %q", e.TopicFilter)
	}
	if e.Domain != "" {
		msg += fmt.Sprintf(", cognitive domain %q", e.Domain)
	}
	return msg
}

// InvalidAnswerSetError reports an option set without exactly one correct
// answer. This is an authoring or synthesis bug, never user error; it must
// surface rather than let a broken question reach a learner.
type InvalidAnswerSetError struct {
	CorrectCount int
}

func (e *InvalidAnswerSetError) Error() string {
	return fmt.Sprintf("invalid answer set: %d options marked correct, want exactly 1", e.CorrectCount)
}

// DuplicateOptionsError reports two options whose labels collide after
// case and whitespace normalization.
type DuplicateOptionsError struct {
	Label string
}

func (e *DuplicateOptionsError) Error() string {
	return fmt.Sprintf("duplicate option label %q", e.Label)
}
