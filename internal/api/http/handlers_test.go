package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	api "github.com/examdesk/examdesk/internal/api/http"
	"github.com/examdesk/examdesk/internal/exam"
	"github.com/examdesk/examdesk/internal/rbac"
	"github.com/examdesk/examdesk/internal/result"
	"github.com/examdesk/examdesk/internal/users"
)

func intp(v int) *int { return &v }

var (
	teacher = rbac.Principal{ID: "t-1", Role: rbac.RoleTeacher}
	rival   = rbac.Principal{ID: "t-2", Role: rbac.RoleTeacher}
	student = rbac.Principal{ID: "s-1", Role: rbac.RoleStudent}
)

type fakeDirectory map[string]users.User

func (d fakeDirectory) GetByID(_ context.Context, id string) (users.User, error) {
	u, ok := d[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

// principalAs stands in for the JWT middleware in tests.
func principalAs(p rbac.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(rbac.WithPrincipal(r.Context(), p)))
		})
	}
}

func newRouter(p rbac.Principal) (chi.Router, *exam.Service, *result.Service) {
	exams := exam.NewInMemoryStore()
	examSvc := exam.NewService(exams)
	dir := fakeDirectory{student.ID: {ID: student.ID, Username: "student", Name: "Demo Student", Role: "student"}}
	resultSvc := result.NewService(result.NewInMemoryStore(), exams, dir)

	r := chi.NewRouter()
	r.Use(principalAs(p))
	r.With(rbac.Require("exam:create")).Post("/exams", api.CreateExamHandler(examSvc))
	r.With(rbac.Require("exam:view")).Get("/exams", api.ListExamsHandler(examSvc))
	r.With(rbac.Require("exam:view")).Get("/exams/{examID}", api.GetExamHandler(examSvc))
	r.With(rbac.Require("exam:list-own")).Get("/exams/teacher/{teacherID}", api.ListTeacherExamsHandler(examSvc))
	r.With(rbac.Require("result:submit")).Post("/results", api.SubmitExamHandler(resultSvc))
	r.With(rbac.RequireAny("result:view-own", "result:view-all")).Get("/results/student/{studentID}", api.ListStudentResultsHandler(resultSvc))
	r.With(rbac.Require("result:view-all")).Get("/results/exam/{examID}", api.ListExamResultsHandler(resultSvc))
	return r, examSvc, resultSvc
}

func seedExam(t *testing.T, svc *exam.Service) exam.Exam {
	t.Helper()
	e, err := svc.Create(context.Background(), teacher, exam.Draft{
		Title:       "Arithmetic",
		Description: "one question",
		Questions: []exam.Question{
			{Text: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: intp(1)},
		},
	})
	require.NoError(t, err)
	return e
}

func do(r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateExamForbiddenForStudent(t *testing.T) {
	r, _, _ := newRouter(student)
	w := do(r, "POST", "/exams", `{"title":"x"}`)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateExamValidation(t *testing.T) {
	r, _, _ := newRouter(teacher)
	w := do(r, "POST", "/exams", `{"title":"x","questions":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetExamRedactedForStudent(t *testing.T) {
	r, examSvc, _ := newRouter(student)
	e := seedExam(t, examSvc)

	w := do(r, "GET", "/exams/"+e.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	qs := got["questions"].([]any)
	for _, q := range qs {
		_, present := q.(map[string]any)["correctAnswer"]
		require.False(t, present, "correctAnswer must not reach students")
	}
}

func TestGetExamFullForTeacher(t *testing.T) {
	r, examSvc, _ := newRouter(teacher)
	e := seedExam(t, examSvc)

	w := do(r, "GET", "/exams/"+e.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "correctAnswer")
}

func TestGetExamNotFound(t *testing.T) {
	r, _, _ := newRouter(teacher)
	w := do(r, "GET", "/exams/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListExamsCatalog(t *testing.T) {
	r, examSvc, _ := newRouter(student)
	seedExam(t, examSvc)

	w := do(r, "GET", "/exams", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "questions")
}

func TestTeacherExamsSelfOnly(t *testing.T) {
	r, examSvc, _ := newRouter(rival)
	seedExam(t, examSvc)

	w := do(r, "GET", "/exams/teacher/t-1", "")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubmitAndListResults(t *testing.T) {
	r, examSvc, _ := newRouter(student)
	e := seedExam(t, examSvc)

	w := do(r, "POST", "/results", `{"examId":"`+e.ID+`","answers":[1],"timeTaken":30}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res result.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, 1, res.Score)
	require.Equal(t, 1, res.MaxScore)

	w = do(r, "GET", "/results/student/"+student.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []result.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
}

func TestSubmitUnknownExamNotFound(t *testing.T) {
	r, _, _ := newRouter(student)
	w := do(r, "POST", "/results", `{"examId":"nope","answers":[1]}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExamResultsNonCreatorForbidden(t *testing.T) {
	// student A submits to exam X, then a teacher who did not create X lists its results
	r, examSvc, resultSvc := newRouter(rival)
	e := seedExam(t, examSvc)
	_, err := resultSvc.Submit(context.Background(), student, result.SubmitInput{ExamID: e.ID, Answers: []int{1}})
	require.NoError(t, err)

	w := do(r, "GET", "/results/exam/"+e.ID, "")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestStudentResultsOtherStudentForbidden(t *testing.T) {
	r, _, _ := newRouter(student)
	w := do(r, "GET", "/results/student/s-2", "")
	require.Equal(t, http.StatusForbidden, w.Code)
}
