package models

// Quiz owns its question list exclusively. Only one quiz is active at a time
// and publishing replaces it wholesale; a quiz with IsActive=false is not
// answerable.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	IsActive    bool       `json:"is_active"`
}

// TotalPoints sums the points of all questions.
func (z *Quiz) TotalPoints() int {
	total := 0
	for _, q := range z.Questions {
		total += q.Points
	}
	return total
}

func (z Quiz) Clone() Quiz {
	cp := z
	cp.Questions = make([]Question, len(z.Questions))
	for i, q := range z.Questions {
		cp.Questions[i] = q.Clone()
	}
	return cp
}
