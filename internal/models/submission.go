package models

import "time"

// Submission is the immutable record of one graded attempt. Score,
// TotalPoints and Percentage are computed once at submit time and never
// recomputed, even if the active quiz is later replaced.
type Submission struct {
	ID           string           `json:"id"`
	StudentName  string           `json:"student_name"`
	StudentPhone string           `json:"student_phone"`
	Answers      map[string][]int `json:"answers"`
	Score        int              `json:"score"`
	TotalPoints  int              `json:"total_points"`
	Percentage   float64          `json:"percentage"`
	Timestamp    time.Time        `json:"timestamp"`
}

func (s Submission) Clone() Submission {
	cp := s
	cp.Answers = make(map[string][]int, len(s.Answers))
	for qid, ids := range s.Answers {
		sel := make([]int, len(ids))
		copy(sel, ids)
		cp.Answers[qid] = sel
	}
	return cp
}
