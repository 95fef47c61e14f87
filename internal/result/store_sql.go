package result

import (
	"context"
	"database/sql"
	"encoding/json"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutResult(ctx context.Context, r Result) error {
	aj, err := json.Marshal(r.Answers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (id,exam_id,student_id,student_name,score,max_score,time_taken_sec,answers_json,completed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		r.ID, r.ExamID, r.StudentID, r.StudentName, r.Score, r.MaxScore, r.TimeTakenSec, string(aj), r.CompletedAt)
	return err
}

func (s *SQLStore) ListByStudent(ctx context.Context, studentID string) ([]Result, error) {
	return s.list(ctx,
		`SELECT id,exam_id,student_id,student_name,score,max_score,time_taken_sec,answers_json,completed_at
		 FROM results WHERE student_id=$1 ORDER BY completed_at DESC`, studentID)
}

func (s *SQLStore) ListByExam(ctx context.Context, examID string) ([]Result, error) {
	return s.list(ctx,
		`SELECT id,exam_id,student_id,student_name,score,max_score,time_taken_sec,answers_json,completed_at
		 FROM results WHERE exam_id=$1 ORDER BY score DESC`, examID)
}

func (s *SQLStore) list(ctx context.Context, query string, arg any) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var r Result
		var ajson string
		var timeTaken sql.NullInt64
		if err := rows.Scan(&r.ID, &r.ExamID, &r.StudentID, &r.StudentName,
			&r.Score, &r.MaxScore, &timeTaken, &ajson, &r.CompletedAt); err != nil {
			return nil, err
		}
		r.TimeTakenSec = int(timeTaken.Int64)
		if err := json.Unmarshal([]byte(ajson), &r.Answers); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
