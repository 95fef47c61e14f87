package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examdesk/examdesk/internal/result"
)

// POST /results — grade server-side and persist the attempt.
func SubmitExamHandler(svc *result.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r)
		if !ok {
			http.Error(w, "not authorized", http.StatusForbidden)
			return
		}
		var in result.SubmitInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if in.ExamID == "" {
			http.Error(w, "examId required", http.StatusBadRequest)
			return
		}
		res, err := svc.Submit(r.Context(), p, in)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, res)
	}
}

// GET /results/student/{studentID} — newest first.
func ListStudentResultsHandler(svc *result.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r)
		if !ok {
			http.Error(w, "not authorized", http.StatusForbidden)
			return
		}
		list, err := svc.ListByStudent(r.Context(), p, chi.URLParam(r, "studentID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, list)
	}
}

// GET /results/exam/{examID} — highest score first, exam creator only.
func ListExamResultsHandler(svc *result.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(r)
		if !ok {
			http.Error(w, "not authorized", http.StatusForbidden)
			return
		}
		list, err := svc.ListByExam(r.Context(), p, chi.URLParam(r, "examID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, list)
	}
}
