package exam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/examdesk/examdesk/internal/exam"
	"github.com/examdesk/examdesk/internal/rbac"
)

func intp(v int) *int { return &v }

var (
	teacher = rbac.Principal{ID: "t-1", Role: rbac.RoleTeacher}
	other   = rbac.Principal{ID: "t-2", Role: rbac.RoleTeacher}
	student = rbac.Principal{ID: "s-1", Role: rbac.RoleStudent}
)

func draft() exam.Draft {
	return exam.Draft{
		Title:       "Arithmetic",
		Description: "one question",
		Questions: []exam.Question{
			{Text: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: intp(1), Explanation: "basic addition"},
		},
	}
}

func newService(t *testing.T) (*exam.Service, exam.Exam) {
	t.Helper()
	svc := exam.NewService(exam.NewInMemoryStore())
	e, err := svc.Create(context.Background(), teacher, draft())
	require.NoError(t, err)
	return svc, e
}

func TestCreateRequiresTeacher(t *testing.T) {
	svc := exam.NewService(exam.NewInMemoryStore())
	_, err := svc.Create(context.Background(), student, draft())
	require.ErrorIs(t, err, rbac.ErrForbidden)
}

func TestGetRedactsForStudents(t *testing.T) {
	svc, e := newService(t)
	got, err := svc.Get(context.Background(), student, e.ID)
	require.NoError(t, err)
	for _, q := range got.Questions {
		require.Nil(t, q.CorrectAnswer)
	}
	// explanation survives redaction, matching observed behavior
	require.Equal(t, "basic addition", got.Questions[0].Explanation)
}

func TestGetFullForTeachers(t *testing.T) {
	svc, e := newService(t)
	got, err := svc.Get(context.Background(), teacher, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Questions[0].CorrectAnswer)
	require.Equal(t, 1, *got.Questions[0].CorrectAnswer)
}

func TestGetIsIdempotent(t *testing.T) {
	svc, e := newService(t)
	first, err := svc.Get(context.Background(), student, e.ID)
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), student, e.ID)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// reads must not strip the stored record's keys
	full, err := svc.Get(context.Background(), teacher, e.ID)
	require.NoError(t, err)
	require.NotNil(t, full.Questions[0].CorrectAnswer)
}

func TestGetUnknownExam(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Get(context.Background(), student, "nope")
	require.ErrorIs(t, err, exam.ErrNotFound)
}

func TestListReturnsSummariesWithoutQuestions(t *testing.T) {
	svc, e := newService(t)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, e.ID, list[0].ID)
	require.Equal(t, e.Title, list[0].Title)
}

func TestListByTeacherSelfOnly(t *testing.T) {
	svc, e := newService(t)

	mine, err := svc.ListByTeacher(context.Background(), teacher, teacher.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, e.ID, mine[0].ID)

	_, err = svc.ListByTeacher(context.Background(), other, teacher.ID)
	require.ErrorIs(t, err, rbac.ErrForbidden)

	_, err = svc.ListByTeacher(context.Background(), student, student.ID)
	require.ErrorIs(t, err, rbac.ErrForbidden)
}
