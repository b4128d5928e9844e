package catalog

// PolygonsCatalog contributes polygon identification and interior-angle
// templates for levels 1-4.
func PolygonsCatalog() Catalog {
	return Catalog{
		Name: "polygons",
		Levels: map[int][]Template{
			1: {
				{
					Type:         "polygon_identify_triangle",
					Domain:       DomainConcept,
					Text:         "Which polygon has exactly 3 sides?",
					Rule:         Rule{Kind: RuleChoice, Choice: 0},
					Hint:         "Count the sides: tri- means three.",
					FixedChoices: []string{"Triangle", "Square", "Pentagon", "Hexagon"},
				},
				{
					Type:   "polygon_interior_triangle",
					Domain: DomainRecall,
					Text:   "What is the sum of the interior angles of a triangle, in degrees?",
					Rule:   Rule{Kind: RuleConst, A: 180},
					Hint:   "Tear the corners off a paper triangle and line them up.",
				},
				{
					Type:   "polygon_sides_square",
					Domain: DomainRecall,
					Text:   "How many sides does a square have?",
					Rule:   Rule{Kind: RuleConst, A: 4},
					Hint:   "A square is a quadrilateral.",
				},
			},
			2: {
				{
					Type:         "polygon_identify_pentagon",
					Domain:       DomainConcept,
					Text:         "Which polygon has exactly 5 sides?",
					Rule:         Rule{Kind: RuleChoice, Choice: 2},
					Hint:         "Penta- means five.",
					FixedChoices: []string{"Hexagon", "Octagon", "Pentagon", "Heptagon"},
				},
				{
					Type:   "polygon_interior_quadrilateral",
					Domain: DomainRecall,
					Text:   "What is the sum of the interior angles of a quadrilateral, in degrees?",
					Rule:   Rule{Kind: RuleConst, A: 360},
					Hint:   "Split the quadrilateral into two triangles.",
				},
				{
					Type:   "polygon_sides_hexagon",
					Domain: DomainRecall,
					Text:   "How many sides does a hexagon have?",
					Rule:   Rule{Kind: RuleConst, A: 6},
					Hint:   "Hexa- means six.",
				},
			},
			3: {
				{
					Type:   "polygon_interior_sum",
					Domain: DomainAnalytical,
					Text:   "What is the sum of the interior angles of a polygon with {sides} sides, in degrees?",
					Params: map[string]ParamSpec{"sides": {Min: 5, Max: 10}},
					Rule:   Rule{Kind: RuleSum, A: 180, B: -360, Params: []string{"sides"}},
					Hint:   "A polygon with n sides splits into n − 2 triangles.",
				},
				{
					Type:   "polygon_vertices_octagon",
					Domain: DomainRecall,
					Text:   "How many vertices does an octagon have?",
					Rule:   Rule{Kind: RuleConst, A: 8},
					Hint:   "A polygon has as many vertices as sides.",
				},
			},
			4: {
				{
					Type:   "polygon_exterior_sum",
					Domain: DomainConcept,
					Text:   "What is the sum of the exterior angles of any convex polygon, in degrees?",
					Rule:   Rule{Kind: RuleConst, A: 360},
					Hint:   "Walk once around the polygon: you turn through one full rotation.",
				},
			},
		},
	}
}
