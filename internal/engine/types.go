package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/abhisek/mathforge/internal/catalog"
)

// Representation selects how a question is phrased.
type Representation string

const (
	// RepresentationText is the literal template phrasing.
	RepresentationText Representation = "text"

	// RepresentationRealWorld rewraps the question in a narrative scenario.
	RepresentationRealWorld Representation = "real_world"

	// RepresentationVisual rephrases the question around a described figure.
	RepresentationVisual Representation = "visual"
)

// Option is a single answer choice.
type Option struct {
	Label   string `json:"label"`
	Correct bool   `json:"correct"`
}

// SolutionValue is the canonical answer: either a numeric value (rounded to
// 2 decimal places) or the label of the correct fixed choice. It serializes
// as a bare number or string on the wire.
type SolutionValue struct {
	Number  float64
	Label   string
	IsLabel bool
}

// String returns the display form of the solution.
func (s SolutionValue) String() string {
	if s.IsLabel {
		return s.Label
	}
	return formatNumber(s.Number)
}

func (s SolutionValue) MarshalJSON() ([]byte, error) {
	if s.IsLabel {
		return json.Marshal(s.Label)
	}
	return json.Marshal(s.Number)
}

func (s *SolutionValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = SolutionValue{Number: num}
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*s = SolutionValue{Label: label, IsLabel: true}
		return nil
	}
	return fmt.Errorf("solution must be a number or a string")
}

// Question is the externally visible artifact of one generation call. It is
// never mutated after construction and is not persisted by this package.
// JSON tags are the wire contract consumed by the API layer.
type Question struct {
	// ID has a deterministic, parameter-derived prefix and a random 0-999
	// suffix. Seeded calls reproduce content but deliberately not the ID:
	// callers rely on ID uniqueness across repeated identical-content calls.
	ID string `json:"id"`

	ChapterID      string                  `json:"chapter_id"`
	Text           string                  `json:"question_text"`
	Type           string                  `json:"type"`
	Difficulty     int                     `json:"difficulty_level"`
	Domain         catalog.CognitiveDomain `json:"cognitive_domain"`
	Representation Representation          `json:"representation_type"`
	Parameters     map[string]int          `json:"parameters"`
	Solution       SolutionValue           `json:"solution"`
	Options        []Option                `json:"options"`
	Hint           string                  `json:"hint"`
	GeneratedAt    time.Time               `json:"generated_at"`
	IsGenerated    bool                    `json:"is_generated"`
	IsRegenerated  bool                    `json:"is_regenerated,omitempty"`
}

// Request holds all inputs to one generation call.
type Request struct {
	// Difficulty is the template difficulty level (1-5). Required.
	Difficulty int

	// ChapterID is carried opaquely onto the Question; the engine never
	// interprets it.
	ChapterID string

	// Seed, when non-nil, makes parameter sampling and option order
	// reproducible. The ID suffix stays random regardless.
	Seed *int64

	// Domain, when set, narrows selection to templates of that cognitive
	// domain where possible. Unsatisfiable domain constraints are ignored
	// rather than failed.
	Domain catalog.CognitiveDomain

	// Representation selects the phrasing mode. Empty means text.
	Representation Representation

	// TopicFilter is a "|"-delimited set of type prefixes, e.g.
	// "polygon_interior|angle".
	TopicFilter string

	// ExcludeTypes lists recently used template types; the resolver avoids
	// the first two when enough other candidates remain.
	ExcludeTypes []string

	// Mastery, when 1-5, biases parameter sampling toward easier (<=2) or
	// harder (>=4) instances. Zero means no adjustment.
	Mastery int
}

// round2 rounds to 2 decimal places, the display and equality precision for
// all numeric solutions.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatNumber renders a numeric value the way option labels and solutions
// display it: integers without a decimal point, everything else rounded to
// at most 2 decimals with no trailing zeros.
func formatNumber(v float64) string {
	v = round2(v)
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
