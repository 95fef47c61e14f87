package exam

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Draft is the client-supplied shape for a new exam, before validation.
type Draft struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	TimeLimitMin int        `json:"timeLimit"`
	Questions    []Question `json:"questions"`
}

// New validates a draft and constructs an immutable Exam owned by createdBy.
// Violations return an error wrapping ErrValidation.
func New(createdBy string, d Draft) (Exam, error) {
	if d.Title == "" {
		return Exam{}, fmt.Errorf("%w: title required", ErrValidation)
	}
	if d.TimeLimitMin < 0 {
		return Exam{}, fmt.Errorf("%w: time limit must be positive", ErrValidation)
	}
	if len(d.Questions) == 0 {
		return Exam{}, fmt.Errorf("%w: at least one question required", ErrValidation)
	}
	for i, q := range d.Questions {
		if err := validateQuestion(q); err != nil {
			return Exam{}, fmt.Errorf("question %d: %w", i, err)
		}
	}
	return Exam{
		ID:           uuid.NewString(),
		Title:        d.Title,
		Description:  d.Description,
		CreatedBy:    createdBy,
		TimeLimitMin: d.TimeLimitMin,
		Questions:    d.Questions,
		CreatedAt:    time.Now().Unix(),
	}, nil
}

func validateQuestion(q Question) error {
	if q.Text == "" {
		return fmt.Errorf("%w: question text required", ErrValidation)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: at least two options required", ErrValidation)
	}
	if q.CorrectAnswer == nil {
		return fmt.Errorf("%w: correct answer required", ErrValidation)
	}
	if *q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: correct answer index out of range", ErrValidation)
	}
	return nil
}
