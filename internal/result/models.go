package result

import "errors"

// ErrNotFound signals that a referenced exam or student does not exist.
var ErrNotFound = errors.New("not found")

// Result is one student's completed submission for one exam. Immutable
// once written; duplicate attempts simply produce additional records.
type Result struct {
	ID           string `json:"id"`
	ExamID       string `json:"examId"`
	StudentID    string `json:"studentId"`
	StudentName  string `json:"studentName"` // denormalized snapshot at submission time
	Score        int    `json:"score"`
	MaxScore     int    `json:"maxScore"`
	TimeTakenSec int    `json:"timeTaken,omitempty"` // seconds
	Answers      []int  `json:"answers"`             // -1 = unanswered
	CompletedAt  int64  `json:"completedAt"`
}
