package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/examdesk/examdesk/internal/exam"
	"github.com/examdesk/examdesk/internal/rbac"
	"github.com/examdesk/examdesk/internal/result"
	"github.com/examdesk/examdesk/internal/users"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain sentinels to status codes. Anything unexpected is
// logged and surfaced as a generic 500 without internal detail.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rbac.ErrForbidden):
		http.Error(w, "not authorized", http.StatusForbidden)
	case errors.Is(err, exam.ErrNotFound), errors.Is(err, result.ErrNotFound), errors.Is(err, users.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, exam.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("internal error: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

func principal(r *http.Request) (rbac.Principal, bool) {
	return rbac.PrincipalFromContext(r.Context())
}
