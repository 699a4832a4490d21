package services

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/sidimedmar/profeleve/internal/models"
	"github.com/sidimedmar/profeleve/internal/store"
)

// EditorService holds the author's uncommitted working copy of a question
// list. Mutations apply only to the working copy; the active quiz changes
// only on Publish, which swaps it wholesale. Discarding leaves the store
// untouched.
type EditorService struct {
	store *store.Store

	// clampOnTypeChange truncates the correct set to one element when a
	// question switches to single choice. Off it reproduces the observed
	// behavior where a stale multi-element correct set survives the switch.
	clampOnTypeChange bool

	mu        sync.Mutex
	editing   bool
	questions []models.Question
}

func NewEditorService(st *store.Store, clampOnTypeChange bool) *EditorService {
	return &EditorService{store: st, clampOnTypeChange: clampOnTypeChange}
}

// StartEditing opens an editing session seeded from the active quiz's
// questions, or an empty list when none is published. An already open
// session is replaced.
func (s *EditorService) StartEditing() []models.Question {
	var seed []models.Question
	if quiz, ok := s.store.ActiveQuiz(); ok {
		seed = quiz.Questions
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.questions = cloneQuestions(seed)
	return cloneQuestions(s.questions)
}

// WorkingCopy returns a snapshot of the current working copy.
func (s *EditorService) WorkingCopy() ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return nil, ErrNotEditing
	}
	return cloneQuestions(s.questions), nil
}

// Discard drops the working copy without touching the active quiz.
func (s *EditorService) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.questions = nil
}

// AddQuestion appends a fresh single-choice question with two empty options
// (ids 0 and 1), no correct answers and one point.
func (s *EditorService) AddQuestion() (models.Question, error) {
	q := models.Question{
		ID:               uuid.NewString(),
		Type:             models.QuestionTypeSingle,
		Options:          []models.Option{{ID: 0}, {ID: 1}},
		CorrectOptionIDs: []int{},
		Points:           1,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return models.Question{}, ErrNotEditing
	}
	s.questions = append(s.questions, q)
	return q.Clone(), nil
}

// AppendQuestion adopts an externally built question (e.g. AI generated)
// into the working copy. It is appended, never merged, so edits made while
// the question was being produced are preserved.
func (s *EditorService) AppendQuestion(q models.Question) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return ErrNotEditing
	}
	s.questions = append(s.questions, q.Clone())
	return nil
}

// RemoveQuestion deletes one question. Sibling questions keep their ids.
func (s *EditorService) RemoveQuestion(questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return ErrNotEditing
	}
	for i, q := range s.questions {
		if q.ID == questionID {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return ErrQuestionNotFound
}

// AddOption appends an empty option with id max(existing)+1, or 0 for a
// question without options. Ids are never reused after removal.
func (s *EditorService) AddOption(questionID string) (models.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.findLocked(questionID)
	if err != nil {
		return models.Option{}, err
	}
	opt := models.Option{ID: q.NextOptionID()}
	q.Options = append(q.Options, opt)
	return opt, nil
}

// SetOptionText updates the text of one option.
func (s *EditorService) SetOptionText(questionID string, optionID int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.findLocked(questionID)
	if err != nil {
		return err
	}
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			q.Options[i].Text = text
			return nil
		}
	}
	return ErrOptionNotFound
}

// ToggleCorrect marks or unmarks an option as correct. Single-choice
// questions use radio semantics: the correct set becomes exactly {optionID}
// regardless of prior state, so re-clicking the selected option cannot empty
// it. Multiple-choice questions flip membership independently.
func (s *EditorService) ToggleCorrect(questionID string, optionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.findLocked(questionID)
	if err != nil {
		return err
	}
	if !q.HasOption(optionID) {
		return ErrOptionNotFound
	}

	if q.Type == models.QuestionTypeSingle {
		q.CorrectOptionIDs = []int{optionID}
		return nil
	}

	for i, id := range q.CorrectOptionIDs {
		if id == optionID {
			q.CorrectOptionIDs = append(q.CorrectOptionIDs[:i], q.CorrectOptionIDs[i+1:]...)
			return nil
		}
	}
	q.CorrectOptionIDs = append(q.CorrectOptionIDs, optionID)
	return nil
}

// SetText updates the question text only.
func (s *EditorService) SetText(questionID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.findLocked(questionID)
	if err != nil {
		return err
	}
	q.Text = text
	return nil
}

// SetPoints updates the question's point value. Negative values are rejected
// rather than stored; callers must parse and validate numeric input first.
func (s *EditorService) SetPoints(questionID string, points int) error {
	if points < 0 {
		return errors.New("points must be zero or positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.findLocked(questionID)
	if err != nil {
		return err
	}
	q.Points = points
	return nil
}

// SetType switches a question between single and multiple choice. The
// correct set is left as-is unless the service was built with clamping
// enabled, in which case switching to single keeps only the lowest correct
// option id.
func (s *EditorService) SetType(questionID, questionType string) error {
	if questionType != models.QuestionTypeSingle && questionType != models.QuestionTypeMultiple {
		return errors.New("unknown question type: " + questionType)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.findLocked(questionID)
	if err != nil {
		return err
	}
	q.Type = questionType
	if s.clampOnTypeChange && questionType == models.QuestionTypeSingle && len(q.CorrectOptionIDs) > 1 {
		sort.Ints(q.CorrectOptionIDs)
		q.CorrectOptionIDs = q.CorrectOptionIDs[:1]
	}
	return nil
}

// Publish commits the working copy as the new active quiz, replacing the
// previous one entirely, and closes the editing session. Prior submissions
// are untouched; their scores were frozen at submit time.
func (s *EditorService) Publish(title string) (models.Quiz, error) {
	prev, hadPrev := s.store.ActiveQuiz()

	s.mu.Lock()
	if !s.editing {
		s.mu.Unlock()
		return models.Quiz{}, ErrNotEditing
	}
	questions := cloneQuestions(s.questions)
	s.editing = false
	s.questions = nil
	s.mu.Unlock()

	quiz := models.Quiz{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "Updated by Professor",
		Questions:   questions,
		IsActive:    true,
	}
	if hadPrev {
		quiz.ID = prev.ID
		if quiz.Title == "" {
			quiz.Title = prev.Title
		}
	}
	if quiz.Title == "" {
		quiz.Title = "New Quiz"
	}

	s.store.SetActiveQuiz(quiz)
	return quiz, nil
}

// findLocked requires s.mu to be held.
func (s *EditorService) findLocked(questionID string) (*models.Question, error) {
	if !s.editing {
		return nil, ErrNotEditing
	}
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			return &s.questions[i], nil
		}
	}
	return nil, ErrQuestionNotFound
}

func cloneQuestions(qs []models.Question) []models.Question {
	out := make([]models.Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}
