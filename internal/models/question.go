package models

const (
	QuestionTypeSingle   = "single"   // radio: at most one correct option
	QuestionTypeMultiple = "multiple" // checkbox: any subset may be correct
)

type Question struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Type             string   `json:"type"`
	Options          []Option `json:"options"`
	CorrectOptionIDs []int    `json:"correct_option_ids"`
	Points           int      `json:"points"`
}

// HasOption reports whether optionID exists in the question's option set.
func (q *Question) HasOption(optionID int) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// NextOptionID returns the id a newly added option must receive.
func (q *Question) NextOptionID() int {
	if len(q.Options) == 0 {
		return 0
	}
	max := q.Options[0].ID
	for _, o := range q.Options[1:] {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

// Clone returns a deep copy so working copies never alias published state.
func (q Question) Clone() Question {
	cp := q
	cp.Options = make([]Option, len(q.Options))
	copy(cp.Options, q.Options)
	cp.CorrectOptionIDs = make([]int, len(q.CorrectOptionIDs))
	copy(cp.CorrectOptionIDs, q.CorrectOptionIDs)
	return cp
}
