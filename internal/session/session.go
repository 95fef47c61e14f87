// Package session drives the client-side exam-taking flow: a timed,
// navigable question sequence that funnels into a single submit
// transition whether the student submits manually or the countdown runs
// out. One session covers one attempt; there is no resume after submit.
package session

import (
	"errors"
	"sync"
)

type State int

const (
	StateLoading State = iota
	StateInProgress
	StateSubmitting
	StateSubmitted
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in_progress"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Unanswered marks a question with no selection yet.
const Unanswered = -1

var (
	ErrNotInProgress = errors.New("session not in progress")
	ErrBadState      = errors.New("invalid state transition")
)

// Payload is what the submit transition hands to the caller: the answers
// as selected at that instant, plus how many are still unanswered.
type Payload struct {
	Answers      []int
	Unanswered   int
	TimeTakenSec int
}

// Session is safe for the cooperative interleaving of one timer goroutine
// and one user-action caller. The submit transition fires at most once
// even if the timer and a manual submit race.
type Session struct {
	mu        sync.Mutex
	state     State
	current   int
	selected  []int
	remaining int  // seconds; meaningful only when timed
	timed     bool
	elapsed   int // seconds since Start, counted by ticks
}

func New() *Session {
	return &Session{state: StateLoading}
}

// Start moves Loading -> InProgress. Every question starts unanswered and
// the countdown is timeLimitMin minutes, or absent when zero.
func (s *Session) Start(numQuestions, timeLimitMin int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return ErrBadState
	}
	if numQuestions < 1 {
		return errors.New("session needs at least one question")
	}
	s.selected = make([]int, numQuestions)
	for i := range s.selected {
		s.selected[i] = Unanswered
	}
	s.current = 0
	s.timed = timeLimitMin > 0
	s.remaining = timeLimitMin * 60
	s.state = StateInProgress
	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) CurrentQuestion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) TimeRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Tick advances the clock by one second. When a time limit is set and the
// countdown reaches zero, the session auto-transitions to Submitting and
// the payload is returned with fired=true, exactly once.
func (s *Session) Tick() (p Payload, fired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return Payload{}, false
	}
	s.elapsed++
	if !s.timed {
		return Payload{}, false
	}
	s.remaining--
	if s.remaining > 0 {
		return Payload{}, false
	}
	s.remaining = 0
	return s.beginSubmitLocked(), true
}

// Next moves forward one question, clamped at the last.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && s.current < len(s.selected)-1 {
		s.current++
	}
}

// Prev moves back one question, clamped at the first.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && s.current > 0 {
		s.current--
	}
}

// JumpTo selects a question directly; out-of-range targets are a no-op.
func (s *Session) JumpTo(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && index >= 0 && index < len(s.selected) {
		s.current = index
	}
}

// Select records an answer for the current question, overwriting any
// prior selection. The question index does not advance.
func (s *Session) Select(option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	s.selected[s.current] = option
	return nil
}

// Answers returns a copy of the current selections.
func (s *Session) Answers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.selected))
	copy(out, s.selected)
	return out
}

// UnansweredCount reports how many questions still hold the sentinel;
// the confirmation step surfaces this before a manual submit.
func (s *Session) UnansweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unansweredLocked()
}

// BeginSubmit is the manual submit transition, allowed from any question
// index regardless of completeness. Returns ErrNotInProgress when the
// timer already fired or the session was abandoned, which is the
// double-submit guard.
func (s *Session) BeginSubmit() (Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return Payload{}, ErrNotInProgress
	}
	return s.beginSubmitLocked(), nil
}

// Complete marks the submit as persisted; the session is terminal.
func (s *Session) Complete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return ErrBadState
	}
	s.state = StateSubmitted
	return nil
}

// Fail returns a failed submit to InProgress so the student can retry.
func (s *Session) Fail() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return ErrBadState
	}
	s.state = StateInProgress
	return nil
}

// Abandon discards the session before submission. No side effects persist.
func (s *Session) Abandon() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading && s.state != StateInProgress {
		return ErrBadState
	}
	s.state = StateAbandoned
	return nil
}

func (s *Session) beginSubmitLocked() Payload {
	s.state = StateSubmitting
	answers := make([]int, len(s.selected))
	copy(answers, s.selected)
	return Payload{
		Answers:      answers,
		Unanswered:   s.unansweredLocked(),
		TimeTakenSec: s.elapsed,
	}
}

func (s *Session) unansweredLocked() int {
	n := 0
	for _, a := range s.selected {
		if a == Unanswered {
			n++
		}
	}
	return n
}
