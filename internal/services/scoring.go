package services

import "github.com/sidimedmar/profeleve/internal/models"

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

type ScoreResult struct {
	Score       int     `json:"score"`
	TotalPoints int     `json:"total_points"`
	Percentage  float64 `json:"percentage"`
}

// Score grades one answer set against a quiz. A question is credited in full
// only when the selected option ids equal the correct set exactly; there is
// no partial credit and no penalty below zero. Unanswered questions count as
// an empty selection, so a question whose correct set is empty is credited
// only when nothing was selected.
func (s *ScoringService) Score(quiz models.Quiz, answers map[string][]int) ScoreResult {
	result := ScoreResult{}
	for _, q := range quiz.Questions {
		result.TotalPoints += q.Points
		if sameIDSet(answers[q.ID], q.CorrectOptionIDs) {
			result.Score += q.Points
		}
	}
	if result.TotalPoints > 0 {
		result.Percentage = float64(result.Score) / float64(result.TotalPoints) * 100
	}
	return result
}

func sameIDSet(selected, correct []int) bool {
	if len(selected) != len(correct) {
		return false
	}
	set := make(map[int]struct{}, len(correct))
	for _, id := range correct {
		set[id] = struct{}{}
	}
	for _, id := range selected {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
