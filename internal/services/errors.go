package services

import "errors"

var (
	// ErrNoActiveQuiz is returned when a participant acts while no published
	// quiz is active. It is a blocked state, not a fatal error.
	ErrNoActiveQuiz = errors.New("no active quiz")
	// ErrNotEditing is returned for editor mutations outside an editing session.
	ErrNotEditing = errors.New("no editing session in progress")
	// ErrQuestionNotFound indicates an unknown question id.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrOptionNotFound indicates an option id outside the question's option set.
	ErrOptionNotFound = errors.New("option not found")
	// ErrAttemptNotFound indicates an unknown attempt id.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrAttemptFinished is returned when acting on an already submitted
	// attempt; the answering→result transition is one-way.
	ErrAttemptFinished = errors.New("attempt already submitted")
)
