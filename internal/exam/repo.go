package exam

import "context"

// Store persists exam definitions. GetExam returns the full record,
// answer keys included; callers apply Redacted before serving students.
type Store interface {
	PutExam(ctx context.Context, e Exam) error
	GetExam(ctx context.Context, id string) (Exam, error)
	ListExams(ctx context.Context) ([]Summary, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]Exam, error)
}
