package domain

// Target is the value every solution must reach.
const Target = 24

// Solution is one equation over a puzzle's numbers that reaches the target.
// Text is the canonical rendering and the identity used for deduplication;
// the remaining fields record how the equation was built.
type Solution struct {
	Text    string      `json:"text"`
	Shape   Shape       `json:"-"`
	Numbers [4]int      `json:"-"`
	Ops     [3]Operator `json:"-"`
}

// Hint suggests the first operation of one known solution.
type Hint struct {
	Message string `json:"message,omitempty"`
	Start   string `json:"start,omitempty"`
}

// Puzzle is a persisted game: four numbers and every equation over them
// that evaluates to the target. Solutions may be empty; that is a valid,
// unsolvable puzzle, not an error.
type Puzzle struct {
	ID        string     `json:"id,omitempty"`
	Numbers   [4]int     `json:"numbers"`
	Solutions []string   `json:"solutions"`
	Width     DigitWidth `json:"width,omitempty"`
	Seed      int64      `json:"seed,omitempty"`
	CreatedAt int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Numbers   [4]int     `json:"numbers"`
	Width     DigitWidth `json:"width"`
	CreatedAt int64      `json:"createdAt"`
}
