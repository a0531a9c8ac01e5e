package quizgen

import "fmt"

// Validator checks a built question before it is handed out.
// Implementations should be stateless.
type Validator interface {
	// Name identifies the validator in error messages.
	Name() string

	// Validate returns nil if q passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks option count, index range, answer placement
// and option uniqueness.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.TargetWord == "" {
		return v.fail("target word is empty")
	}
	if len(q.Options) < MinPoolSize || len(q.Options) > MaxOptions {
		return v.fail(fmt.Sprintf("option count %d outside %d..%d", len(q.Options), MinPoolSize, MaxOptions))
	}
	if len(q.OptionWords) != len(q.Options) {
		return v.fail("options and option words differ in length")
	}
	if !q.ValidIndex(q.CorrectIndex) {
		return v.fail(fmt.Sprintf("correct index %d out of range", q.CorrectIndex))
	}
	if q.OptionWords[q.CorrectIndex] != q.TargetWord {
		return v.fail("correct index does not point at the target word")
	}
	seen := make(map[string]bool, len(q.OptionWords))
	for _, w := range q.OptionWords {
		if seen[w] {
			return v.fail(fmt.Sprintf("word %q offered twice", w))
		}
		seen[w] = true
	}
	for i, opt := range q.Options {
		if opt == "" {
			return v.fail(fmt.Sprintf("option %d is empty", i))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
