package exam

import (
	"context"
	"fmt"

	"github.com/examdesk/examdesk/internal/rbac"
)

// Service applies the authorization gate's role rules on top of a Store
// and redacts answer keys for student viewers.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create persists a new exam owned by the calling teacher.
func (s *Service) Create(ctx context.Context, p rbac.Principal, d Draft) (Exam, error) {
	if p.Role != rbac.RoleTeacher {
		return Exam{}, rbac.ErrForbidden
	}
	e, err := New(p.ID, d)
	if err != nil {
		return Exam{}, err
	}
	if err := s.store.PutExam(ctx, e); err != nil {
		return Exam{}, fmt.Errorf("store exam: %w", err)
	}
	return e, nil
}

// List returns the catalog view for any authenticated principal.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.store.ListExams(ctx)
}

// Get returns the exam, redacted when the viewer is a student.
func (s *Service) Get(ctx context.Context, p rbac.Principal, id string) (Exam, error) {
	e, err := s.store.GetExam(ctx, id)
	if err != nil {
		return Exam{}, err
	}
	if p.Role == rbac.RoleStudent {
		return Redacted(e), nil
	}
	return e, nil
}

// ListByTeacher returns a teacher's own exams, keys included.
func (s *Service) ListByTeacher(ctx context.Context, p rbac.Principal, teacherID string) ([]Exam, error) {
	if p.Role != rbac.RoleTeacher || p.ID != teacherID {
		return nil, rbac.ErrForbidden
	}
	return s.store.ListByTeacher(ctx, teacherID)
}
