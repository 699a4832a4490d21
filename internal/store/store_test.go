package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sidimedmar/profeleve/internal/models"
	"github.com/sidimedmar/profeleve/internal/store"
)

func TestActiveQuizEmptyStore(t *testing.T) {
	st := store.NewStore()

	_, ok := st.ActiveQuiz()
	require.False(t, ok)
	require.Equal(t, 0, st.SubmissionCount())
	require.Empty(t, st.Submissions())
}

func TestSeedInstallsDemoQuiz(t *testing.T) {
	st := store.NewStore()
	st.Seed()

	quiz, ok := st.ActiveQuiz()
	require.True(t, ok)
	require.Equal(t, "quiz-1", quiz.ID)
	require.True(t, quiz.IsActive)
	require.Len(t, quiz.Questions, 1)
	require.Equal(t, []int{1}, quiz.Questions[0].CorrectOptionIDs)
}

func TestSetActiveQuizReplacesWholesale(t *testing.T) {
	st := store.NewStore()
	st.Seed()

	st.SetActiveQuiz(models.Quiz{ID: "quiz-2", Title: "Autre", IsActive: true})

	quiz, ok := st.ActiveQuiz()
	require.True(t, ok)
	require.Equal(t, "quiz-2", quiz.ID)
	require.Empty(t, quiz.Questions)
}

func TestActiveQuizReturnsCopy(t *testing.T) {
	st := store.NewStore()
	st.Seed()

	quiz, _ := st.ActiveQuiz()
	quiz.Questions[0].Text = "tampered"
	quiz.Questions[0].CorrectOptionIDs[0] = 99

	fresh, _ := st.ActiveQuiz()
	require.NotEqual(t, "tampered", fresh.Questions[0].Text)
	require.Equal(t, []int{1}, fresh.Questions[0].CorrectOptionIDs)
}

func TestSubmissionsAppendOnlyInOrder(t *testing.T) {
	st := store.NewStore()
	now := time.Now()
	st.AddSubmission(models.Submission{ID: "a", StudentName: "Amina", Timestamp: now})
	st.AddSubmission(models.Submission{ID: "b", StudentName: "Bilal", Timestamp: now})

	subs := st.Submissions()
	require.Len(t, subs, 2)
	require.Equal(t, "a", subs[0].ID)
	require.Equal(t, "b", subs[1].ID)
	require.Equal(t, 2, st.SubmissionCount())

	// The returned slice is a copy; mutating it does not touch the store.
	subs[0].StudentName = "tampered"
	require.Equal(t, "Amina", st.Submissions()[0].StudentName)
}
