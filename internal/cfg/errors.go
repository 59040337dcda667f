package cfg

import "fmt"

// Kind-distinguishing sentinel errors, checkable with errors.Is.
var (
	// ErrTooManyNonTerminals indicates the fresh-name generator exhausted
	// all 250 candidate names during a single pipeline run.
	ErrTooManyNonTerminals = fmt.Errorf("too many non-terminals: fresh-name generator exhausted (250 names)")

	// ErrGreibachNotAchievable indicates the GNF pipeline could not bring
	// the grammar into Greibach Normal Form, either because validation
	// found a body not beginning with a terminal, or because
	// head-terminalization exceeded its iteration cap.
	ErrGreibachNotAchievable = fmt.Errorf("grammar cannot be brought into Greibach Normal Form")
)

// pipelineError wraps one of the sentinel errors above with additional,
// human-readable detail, mirroring dekarrin-tunaq's internal/tqerrors
// pattern of a small struct carrying both a technical message and the
// sentinel it represents.
type pipelineError struct {
	sentinel error
	detail   string
}

func (e *pipelineError) Error() string {
	if e.detail == "" {
		return e.sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", e.sentinel.Error(), e.detail)
}

func (e *pipelineError) Unwrap() error {
	return e.sentinel
}

func newTooManyNonTerminals() error {
	return &pipelineError{sentinel: ErrTooManyNonTerminals}
}

// newGreibachNotAchievable builds an ErrGreibachNotAchievable with detail
// explaining which rule or condition failed validation.
func newGreibachNotAchievable(detail string) error {
	return &pipelineError{sentinel: ErrGreibachNotAchievable, detail: detail}
}
