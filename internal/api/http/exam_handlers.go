package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examdesk/examdesk/internal/exam"
)

// POST /exams
func CreateExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r)
		if !ok {
			http.Error(w, "not authorized", http.StatusForbidden)
			return
		}
		var d exam.Draft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		e, err := svc.Create(r.Context(), p, d)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, e)
	}
}

// GET /exams — catalog summaries, questions omitted.
func ListExamsHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, list)
	}
}

// GET /exams/{examID} — redacted when the caller is a student.
func GetExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r)
		if !ok {
			http.Error(w, "not authorized", http.StatusForbidden)
			return
		}
		e, err := svc.Get(r.Context(), p, chi.URLParam(r, "examID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, e)
	}
}

// GET /exams/teacher/{teacherID} — a teacher's own exams, keys included.
func ListTeacherExamsHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r)
		if !ok {
			http.Error(w, "not authorized", http.StatusForbidden)
			return
		}
		list, err := svc.ListByTeacher(r.Context(), p, chi.URLParam(r, "teacherID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, list)
	}
}
