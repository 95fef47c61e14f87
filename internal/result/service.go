package result

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/examdesk/examdesk/internal/exam"
	"github.com/examdesk/examdesk/internal/grading"
	"github.com/examdesk/examdesk/internal/rbac"
	"github.com/examdesk/examdesk/internal/users"
)

// UserDirectory resolves the submitting student to a user row so the
// result can carry a denormalized name snapshot.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

// SubmitInput is the client-supplied attempt payload. The score is never
// part of it: scoring always happens server-side against the stored exam.
type SubmitInput struct {
	ExamID       string `json:"examId"`
	Answers      []int  `json:"answers"`
	TimeTakenSec int    `json:"timeTaken"`
}

type Service struct {
	store Store
	exams exam.Store
	dir   UserDirectory
}

func NewService(store Store, exams exam.Store, dir UserDirectory) *Service {
	return &Service{store: store, exams: exams, dir: dir}
}

// Submit grades the attempt against the authoritative exam and persists a
// new result. Duplicate submissions by the same student are permitted and
// simply produce additional records.
func (s *Service) Submit(ctx context.Context, p rbac.Principal, in SubmitInput) (Result, error) {
	if p.Role != rbac.RoleStudent {
		return Result{}, rbac.ErrForbidden
	}
	e, err := s.exams.GetExam(ctx, in.ExamID)
	if err != nil {
		return Result{}, err
	}
	student, err := s.dir.GetByID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return Result{}, fmt.Errorf("%w: student", ErrNotFound)
		}
		return Result{}, err
	}

	r := Result{
		ID:           uuid.NewString(),
		ExamID:       e.ID,
		StudentID:    student.ID,
		StudentName:  student.Name,
		Score:        grading.Score(e.Questions, in.Answers),
		MaxScore:     grading.MaxScore(e.Questions),
		TimeTakenSec: in.TimeTakenSec,
		Answers:      in.Answers,
		CompletedAt:  time.Now().Unix(),
	}
	if err := s.store.PutResult(ctx, r); err != nil {
		return Result{}, fmt.Errorf("store result: %w", err)
	}
	return r, nil
}

// ListByStudent returns a student's results, newest first. Students see
// only their own; teachers may view any student's.
func (s *Service) ListByStudent(ctx context.Context, p rbac.Principal, studentID string) ([]Result, error) {
	if p.Role == rbac.RoleStudent && p.ID != studentID {
		return nil, rbac.ErrForbidden
	}
	return s.store.ListByStudent(ctx, studentID)
}

// ListByExam returns an exam's results ordered by score, restricted to the
// teacher who created the exam.
func (s *Service) ListByExam(ctx context.Context, p rbac.Principal, examID string) ([]Result, error) {
	if p.Role != rbac.RoleTeacher {
		return nil, rbac.ErrForbidden
	}
	e, err := s.exams.GetExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	if e.CreatedBy != p.ID {
		return nil, rbac.ErrForbidden
	}
	return s.store.ListByExam(ctx, examID)
}
