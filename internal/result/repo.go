package result

import "context"

// Store persists submitted attempts. Listings come back pre-ordered:
// by-student newest first, by-exam highest score first.
type Store interface {
	PutResult(ctx context.Context, r Result) error
	ListByStudent(ctx context.Context, studentID string) ([]Result, error)
	ListByExam(ctx context.Context, examID string) ([]Result, error)
}
