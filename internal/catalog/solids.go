package catalog

// SolidsCatalog contributes 3D-shape templates for levels 1-4.
func SolidsCatalog() Catalog {
	return Catalog{
		Name: "solids",
		Levels: map[int][]Template{
			1: {
				{
					Type:   "solid_faces_cube",
					Domain: DomainRecall,
					Text:   "How many faces does a cube have?",
					Rule:   Rule{Kind: RuleConst, A: 6},
					Hint:   "Think of a die.",
				},
				{
					Type:   "solid_vertices_cube",
					Domain: DomainRecall,
					Text:   "How many vertices (corners) does a cube have?",
					Rule:   Rule{Kind: RuleConst, A: 8},
					Hint:   "Four corners on top, four on the bottom.",
				},
			},
			2: {
				{
					Type:   "solid_edges_cube",
					Domain: DomainRecall,
					Text:   "How many edges does a cube have?",
					Rule:   Rule{Kind: RuleConst, A: 12},
					Hint:   "Count the top square, the bottom square, and the uprights.",
				},
				{
					Type:         "solid_identify_sphere",
					Domain:       DomainConcept,
					Text:         "Which solid has no faces, no edges, and no vertices?",
					Rule:         Rule{Kind: RuleChoice, Choice: 1},
					Hint:         "It is perfectly round.",
					FixedChoices: []string{"Cylinder", "Sphere", "Cone", "Cube"},
				},
			},
			3: {
				{
					Type: "solid_volume_prism",
					Domain: DomainProcedural,
					Text: "A rectangular prism is {length} units long, {width} units wide, and {height} units tall. Find its volume.",
					Params: map[string]ParamSpec{
						"length": {Min: 3, Max: 10},
						"width":  {Min: 2, Max: 8},
						"height": {Min: 2, Max: 9},
					},
					Rule: Rule{Kind: RuleProduct, A: 1, Params: []string{"length", "width", "height"}},
					Hint: "Volume = length × width × height.",
				},
			},
			4: {
				{
					Type: "solid_volume_pyramid",
					Domain: DomainHigherOrder,
					Text: "A pyramid has a square base with side {side} units and a height of {height} units. Find its volume. Round to 2 decimal places.",
					Params: map[string]ParamSpec{
						"side":   {Min: 3, Max: 9},
						"height": {Min: 4, Max: 12},
					},
					Rule: Rule{Kind: RuleProduct, A: 1.0 / 3.0, Params: []string{"side", "side", "height"}},
					Hint: "Volume of a pyramid = ⅓ × base area × height.",
				},
				{
					Type: "solid_surface_area_cube",
					Domain: DomainAnalytical,
					Text: "Find the total surface area of a cube with edge length {edge} units.",
					Params: map[string]ParamSpec{
						"edge": {Min: 2, Max: 10},
					},
					Rule: Rule{Kind: RuleProduct, A: 6, Params: []string{"edge", "edge"}},
					Hint: "A cube has 6 identical square faces.",
				},
			},
		},
	}
}
