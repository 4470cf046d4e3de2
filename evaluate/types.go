package evaluate

import (
	"errors"
	"time"
)

const (
	// QualityHorizon is the horizon of the weighted-sum mode.
	QualityHorizon = 24

	// ProductHorizon is the horizon of the product mode.
	ProductHorizon = 32

	// ProductCount is how many leading blueprints the product mode uses.
	ProductCount = 3
)

var (
	// ErrNoBlueprints is returned when there is nothing to evaluate.
	ErrNoBlueprints = errors.New("evaluate: no blueprints")

	// ErrInvalidCount is returned for a non-positive product count.
	ErrInvalidCount = errors.New("evaluate: count must be positive")

	// ErrOverflow is returned when a sum or product does not fit in an int.
	ErrOverflow = errors.New("evaluate: result overflows int")
)

// Outcome is the search result of one blueprint.
type Outcome struct {
	// Ordinal is the 1-based position of the blueprint in the input.
	Ordinal int `json:"ordinal"`

	// ID is the blueprint's own ID.
	ID int `json:"id"`

	// Geodes is the best geode count found.
	Geodes int `json:"geodes"`

	// Quality is Ordinal·Geodes.
	Quality int `json:"quality"`

	// Nodes is the number of search nodes visited.
	Nodes int64 `json:"nodes"`

	// Elapsed is the search time.
	Elapsed time.Duration `json:"elapsed"`
}

// Report is the folded result of one mode.
type Report struct {
	Mode     string    `json:"mode"`
	Horizon  int       `json:"horizon"`
	Result   int       `json:"result"`
	Outcomes []Outcome `json:"outcomes"`
}
