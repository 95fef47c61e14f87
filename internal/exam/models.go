package exam

import "errors"

var (
	// ErrNotFound signals that no exam exists for the requested id.
	ErrNotFound = errors.New("exam not found")
	// ErrValidation signals that an exam definition violates the question invariants.
	ErrValidation = errors.New("invalid exam")
)

// Question is one multiple-choice item. CorrectAnswer is a pointer so the
// redacted form can drop the field from JSON entirely rather than sending 0.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

type Exam struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreatedBy    string     `json:"createdBy"`
	TimeLimitMin int        `json:"timeLimit,omitempty"` // minutes; 0 = untimed
	Questions    []Question `json:"questions"`
	CreatedAt    int64      `json:"createdAt,omitempty"`
}

// Summary is the catalog projection students browse: no questions,
// so nothing answer-revealing ever reaches the list endpoint.
type Summary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreatedBy    string `json:"createdBy"`
	TimeLimitMin int    `json:"timeLimit,omitempty"`
}

func (e Exam) Summary() Summary {
	return Summary{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		CreatedBy:    e.CreatedBy,
		TimeLimitMin: e.TimeLimitMin,
	}
}

// Redacted returns a deep copy with every question's CorrectAnswer removed.
// Explanation is intentionally left in place (the client shows it after
// submission). The stored record is never mutated.
func Redacted(e Exam) Exam {
	out := e
	out.Questions = make([]Question, len(e.Questions))
	for i, q := range e.Questions {
		q.CorrectAnswer = nil
		out.Questions[i] = q
	}
	return out
}
