package store

import (
	"sync"

	"github.com/sidimedmar/profeleve/internal/models"
)

// Store holds the process-wide session state: the single active quiz and the
// append-only submission collection. Nothing is persisted; restarting the
// process resets to the seeded demo quiz and zero submissions.
type Store struct {
	mu          sync.RWMutex
	activeQuiz  *models.Quiz
	submissions []models.Submission
}

func NewStore() *Store {
	return &Store{}
}

// ActiveQuiz returns a deep copy of the active quiz. The second return is
// false when no quiz has been published yet.
func (s *Store) ActiveQuiz() (models.Quiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeQuiz == nil {
		return models.Quiz{}, false
	}
	return s.activeQuiz.Clone(), true
}

// SetActiveQuiz replaces the active quiz wholesale. There are no partial
// updates: publishing swaps the entire object.
func (s *Store) SetActiveQuiz(quiz models.Quiz) {
	cp := quiz.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeQuiz = &cp
}

// AddSubmission appends one submission. Submissions are never mutated or
// removed afterwards.
func (s *Store) AddSubmission(sub models.Submission) {
	cp := sub.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, cp)
}

// Submissions returns a copy of the collection in insertion order.
func (s *Store) Submissions() []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Submission, len(s.submissions))
	for i, sub := range s.submissions {
		out[i] = sub.Clone()
	}
	return out
}

func (s *Store) SubmissionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.submissions)
}

// Seed installs the demo quiz so a fresh process is immediately answerable.
func (s *Store) Seed() {
	s.SetActiveQuiz(models.Quiz{
		ID:          "quiz-1",
		Title:       "Demo Quiz",
		Description: "Generated from App",
		IsActive:    true,
		Questions: []models.Question{
			{
				ID:   "q1",
				Text: "Quelle est la capitale de la France ? / ما هي عاصمة فرنسا؟",
				Type: models.QuestionTypeSingle,
				Options: []models.Option{
					{ID: 0, Text: "Lyon"},
					{ID: 1, Text: "Paris"},
					{ID: 2, Text: "Marseille"},
					{ID: 3, Text: "Bordeaux"},
				},
				CorrectOptionIDs: []int{1},
				Points:           5,
			},
		},
	})
}
