// Package grading computes scores for submitted answers. Matching is
// positional: answers[i] is graded against questions[i], so the order the
// questions were served in must match the order at submission.
package grading

import "github.com/examdesk/examdesk/internal/exam"

// Unanswered is the sentinel for a question the student never answered.
const Unanswered = -1

// Score counts the answers that match their question's correct option.
// Answers beyond the question list are ignored; questions beyond the
// answer list count as incorrect. Pure and deterministic.
func Score(questions []exam.Question, answers []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if q.CorrectAnswer != nil && answers[i] == *q.CorrectAnswer {
			score++
		}
	}
	return score
}

// MaxScore is one point per question.
func MaxScore(questions []exam.Question) int {
	return len(questions)
}
