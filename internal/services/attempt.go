package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sidimedmar/profeleve/internal/models"
	"github.com/sidimedmar/profeleve/internal/store"
)

const (
	AttemptStatusAnswering = "answering"
	AttemptStatusResult    = "result"
)

// AttemptService runs the participant flow: login → answering → result.
// Starting an attempt requires a name, a phone and an active quiz; the quiz
// is snapshotted so a publish mid-attempt cannot change what the participant
// is answering. Submitting is one-way: it scores the answers, records the
// submission and freezes the attempt.
type AttemptService struct {
	store   *store.Store
	scoring *ScoringService
	clock   func() time.Time

	mu       sync.Mutex
	attempts map[string]*attempt
}

type attempt struct {
	id           string
	studentName  string
	studentPhone string
	status       string
	quiz         models.Quiz
	answers      map[string][]int
	result       *models.Submission
}

func NewAttemptService(st *store.Store, scoring *ScoringService) *AttemptService {
	return &AttemptService{
		store:    st,
		scoring:  scoring,
		clock:    time.Now,
		attempts: make(map[string]*attempt),
	}
}

// AttemptView is the participant-facing state of one attempt. The quiz view
// omits correct option ids.
type AttemptView struct {
	ID      string           `json:"id"`
	Status  string           `json:"status"`
	Quiz    QuizView         `json:"quiz"`
	Answers map[string][]int `json:"answers"`
	Result  *ScoreResult     `json:"result,omitempty"`
}

type QuizView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuestionView `json:"questions"`
}

type QuestionView struct {
	ID      string          `json:"id"`
	Text    string          `json:"text"`
	Type    string          `json:"type"`
	Options []models.Option `json:"options"`
	Points  int             `json:"points"`
}

// Start opens an attempt after the login gate. Both name and phone must be
// non-empty; without an active quiz the participant stays blocked and no
// scoring ever runs.
func (s *AttemptService) Start(name, phone string) (AttemptView, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return AttemptView{}, errors.New("name and phone are required")
	}

	quiz, ok := s.store.ActiveQuiz()
	if !ok || !quiz.IsActive {
		return AttemptView{}, ErrNoActiveQuiz
	}

	a := &attempt{
		id:           uuid.NewString(),
		studentName:  name,
		studentPhone: phone,
		status:       AttemptStatusAnswering,
		quiz:         quiz,
		answers:      make(map[string][]int),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[a.id] = a
	return s.view(a), nil
}

// Get returns the current state of an attempt.
func (s *AttemptService) Get(attemptID string) (AttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[attemptID]
	if !ok {
		return AttemptView{}, ErrAttemptNotFound
	}
	return s.view(a), nil
}

// SelectOption applies one selection with the question's input semantics:
// single choice replaces the selection (radio), multiple choice toggles the
// option in and out (checkbox).
func (s *AttemptService) SelectOption(attemptID, questionID string, optionID int) (AttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[attemptID]
	if !ok {
		return AttemptView{}, ErrAttemptNotFound
	}
	if a.status != AttemptStatusAnswering {
		return AttemptView{}, ErrAttemptFinished
	}

	var question *models.Question
	for i := range a.quiz.Questions {
		if a.quiz.Questions[i].ID == questionID {
			question = &a.quiz.Questions[i]
			break
		}
	}
	if question == nil {
		return AttemptView{}, ErrQuestionNotFound
	}
	if !question.HasOption(optionID) {
		return AttemptView{}, ErrOptionNotFound
	}

	if question.Type == models.QuestionTypeSingle {
		a.answers[questionID] = []int{optionID}
		return s.view(a), nil
	}

	current := a.answers[questionID]
	for i, id := range current {
		if id == optionID {
			a.answers[questionID] = append(current[:i], current[i+1:]...)
			return s.view(a), nil
		}
	}
	a.answers[questionID] = append(current, optionID)
	return s.view(a), nil
}

// Submit scores the attempt, records the submission and moves the attempt to
// its terminal result state. There is no path back to answering.
func (s *AttemptService) Submit(attemptID string) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[attemptID]
	if !ok {
		return models.Submission{}, ErrAttemptNotFound
	}
	if a.status != AttemptStatusAnswering {
		return models.Submission{}, ErrAttemptFinished
	}

	result := s.scoring.Score(a.quiz, a.answers)
	sub := models.Submission{
		ID:           uuid.NewString(),
		StudentName:  a.studentName,
		StudentPhone: a.studentPhone,
		Answers:      a.answers,
		Score:        result.Score,
		TotalPoints:  result.TotalPoints,
		Percentage:   result.Percentage,
		Timestamp:    s.clock(),
	}

	s.store.AddSubmission(sub)
	a.status = AttemptStatusResult
	a.result = &sub
	return sub.Clone(), nil
}

// view requires s.mu to be held (or a to be otherwise unshared).
func (s *AttemptService) view(a *attempt) AttemptView {
	qv := QuizView{
		ID:          a.quiz.ID,
		Title:       a.quiz.Title,
		Description: a.quiz.Description,
		Questions:   make([]QuestionView, len(a.quiz.Questions)),
	}
	for i, q := range a.quiz.Questions {
		opts := make([]models.Option, len(q.Options))
		copy(opts, q.Options)
		qv.Questions[i] = QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Type:    q.Type,
			Options: opts,
			Points:  q.Points,
		}
	}

	answers := make(map[string][]int, len(a.answers))
	for qid, ids := range a.answers {
		sel := make([]int, len(ids))
		copy(sel, ids)
		answers[qid] = sel
	}

	view := AttemptView{
		ID:      a.id,
		Status:  a.status,
		Quiz:    qv,
		Answers: answers,
	}
	if a.result != nil {
		view.Result = &ScoreResult{
			Score:       a.result.Score,
			TotalPoints: a.result.TotalPoints,
			Percentage:  a.result.Percentage,
		}
	}
	return view
}
