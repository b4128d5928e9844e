package catalog

import "math"

// MeasurementCatalog contributes real-world measurement word problems for
// levels 1-4.
func MeasurementCatalog() Catalog {
	return Catalog{
		Name: "measurement",
		Levels: map[int][]Template{
			1: {
				{
					Type: "measure_perimeter_garden",
					Domain: DomainProblemSolving,
					Text: "A garden is {length} meters long and {width} meters wide. How many meters of fencing are needed to go all the way around it?",
					Params: map[string]ParamSpec{
						"length": {Min: 5, Max: 20},
						"width":  {Min: 3, Max: 12},
					},
					Rule: Rule{Kind: RuleSum, A: 2, Params: []string{"length", "width"}},
					Hint: "The fence follows the perimeter of the rectangle.",
				},
			},
			2: {
				{
					Type: "measure_area_floor",
					Domain: DomainProblemSolving,
					Text: "A rectangular floor is {length} meters long and {width} meters wide. How many square meters of tile are needed to cover it?",
					Params: map[string]ParamSpec{
						"length": {Min: 4, Max: 15},
						"width":  {Min: 3, Max: 10},
					},
					Rule: Rule{Kind: RuleProduct, A: 1, Params: []string{"length", "width"}},
					Hint: "Tiles cover the area: length × width.",
				},
			},
			3: {
				{
					Type: "measure_volume_tank",
					Domain: DomainProblemSolving,
					Text: "A water tank is {length} meters long, {width} meters wide, and {height} meters deep. How many cubic meters of water can it hold?",
					Params: map[string]ParamSpec{
						"length": {Min: 2, Max: 8},
						"width":  {Min: 2, Max: 6},
						"height": {Min: 1, Max: 5},
					},
					Rule: Rule{Kind: RuleProduct, A: 1, Params: []string{"length", "width", "height"}},
					Hint: "Capacity is the volume of the box.",
				},
			},
			4: {
				{
					Type:   "measure_circumference_track",
					Domain: DomainProblemSolving,
					Text:   "A circular running track has a radius of {radius} meters. How far is one complete lap? Round to 2 decimal places.",
					Params: map[string]ParamSpec{"radius": {Min: 10, Max: 60, Step: 5}},
					Rule:   Rule{Kind: RuleProduct, A: 2 * math.Pi, Params: []string{"radius"}},
					Hint:   "One lap is the circumference: 2 × π × radius.",
				},
			},
		},
	}
}
