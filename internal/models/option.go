package models

// Option is one selectable answer choice within a question. Its ID is unique
// within the owning question and stable for the question's lifetime: removal
// never renumbers siblings, new options get max(existing)+1.
type Option struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}
