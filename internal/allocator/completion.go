package allocator

import "github.com/handiism/osuap/internal/model"

// Goal is the only win condition: holding Count items named Item.
type Goal struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// NewGoal returns the progress-point goal for a threshold.
func NewGoal(threshold int) Goal {
	return Goal{Item: model.ProgressPointItem, Count: threshold}
}

// Satisfied reports whether the held amount of the goal item reaches the
// threshold.
func (g Goal) Satisfied(count func(item string) int) bool {
	return count(g.Item) >= g.Count
}
