package result_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/examdesk/examdesk/internal/db"
	"github.com/examdesk/examdesk/internal/result"
)

func openTestStore(t *testing.T) *result.SQLStore {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite, "file:resultstore_test.db?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	for _, stmt := range []string{`DELETE FROM results`, `DELETE FROM exams`} {
		_, err = dbh.Exec(stmt)
		require.NoError(t, err)
	}
	_, err = dbh.Exec(`INSERT INTO exams (id,title,description,created_by,time_limit_min,questions_json,created_at)
		VALUES ('e-1','A','','t-1',0,'[]',100)`)
	require.NoError(t, err)
	return result.NewSQLStore(dbh, "sqlite")
}

func TestSQLStoreOrderings(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rows := []result.Result{
		{ID: "r-1", ExamID: "e-1", StudentID: "s-1", StudentName: "A", Score: 1, MaxScore: 2, Answers: []int{1, -1}, CompletedAt: 100},
		{ID: "r-2", ExamID: "e-1", StudentID: "s-1", StudentName: "A", Score: 2, MaxScore: 2, TimeTakenSec: 30, Answers: []int{1, 1}, CompletedAt: 300},
		{ID: "r-3", ExamID: "e-1", StudentID: "s-2", StudentName: "B", Score: 0, MaxScore: 2, Answers: []int{0, 0}, CompletedAt: 200},
	}
	for _, r := range rows {
		require.NoError(t, store.PutResult(ctx, r))
	}

	byStudent, err := store.ListByStudent(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, byStudent, 2)
	// newest first
	require.Equal(t, "r-2", byStudent[0].ID)
	require.Equal(t, "r-1", byStudent[1].ID)
	require.Equal(t, []int{1, 1}, byStudent[0].Answers)
	require.Equal(t, 30, byStudent[0].TimeTakenSec)

	byExam, err := store.ListByExam(ctx, "e-1")
	require.NoError(t, err)
	require.Len(t, byExam, 3)
	// highest score first
	require.Equal(t, []string{"r-2", "r-1", "r-3"}, []string{byExam[0].ID, byExam[1].ID, byExam[2].ID})
}

func TestSQLStoreEmptyListings(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	byStudent, err := store.ListByStudent(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, byStudent)

	byExam, err := store.ListByExam(ctx, "e-1")
	require.NoError(t, err)
	require.Empty(t, byExam)
}
