package catalog

// AnglesCatalog contributes angle-relationship templates for levels 1-4.
func AnglesCatalog() Catalog {
	return Catalog{
		Name: "angles",
		Levels: map[int][]Template{
			1: {
				{
					Type:   "angle_right",
					Domain: DomainRecall,
					Text:   "How many degrees are in a right angle?",
					Rule:   Rule{Kind: RuleConst, A: 90},
					Hint:   "The corner of a sheet of paper is a right angle.",
				},
				{
					Type:   "angle_straight",
					Domain: DomainRecall,
					Text:   "How many degrees are in a straight angle?",
					Rule:   Rule{Kind: RuleConst, A: 180},
					Hint:   "A straight angle is a straight line.",
				},
			},
			2: {
				{
					Type:   "angle_complementary",
					Domain: DomainProcedural,
					Text:   "Two angles are complementary. One measures {angle} degrees. What is the other angle?",
					Params: map[string]ParamSpec{"angle": {Min: 10, Max: 80}},
					Rule:   Rule{Kind: RuleSum, A: -1, B: 90, Params: []string{"angle"}},
					Hint:   "Complementary angles add up to 90 degrees.",
				},
				{
					Type:   "angle_supplementary",
					Domain: DomainProcedural,
					Text:   "Two angles are supplementary. One measures {angle} degrees. What is the other angle?",
					Params: map[string]ParamSpec{"angle": {Min: 20, Max: 160}},
					Rule:   Rule{Kind: RuleSum, A: -1, B: 180, Params: []string{"angle"}},
					Hint:   "Supplementary angles add up to 180 degrees.",
				},
			},
			3: {
				{
					Type:   "angle_full_rotation",
					Domain: DomainRecall,
					Text:   "How many degrees are in a full rotation?",
					Rule:   Rule{Kind: RuleConst, A: 360},
					Hint:   "A full turn brings you back where you started.",
				},
				{
					Type:   "angle_vertical",
					Domain: DomainAnalytical,
					Text:   "Two lines intersect. One of the angles formed measures {angle} degrees. What is the measure of the angle directly opposite it?",
					Params: map[string]ParamSpec{"angle": {Min: 15, Max: 165, Step: 5}},
					Rule:   Rule{Kind: RuleSum, A: 1, Params: []string{"angle"}},
					Hint:   "Vertical angles are equal.",
				},
				{
					Type:   "triangle_angle_sum",
					Domain: DomainRecall,
					Text:   "What do the three interior angles of a triangle add up to, in degrees?",
					Rule:   Rule{Kind: RuleConst, A: 180},
					Hint:   "Every triangle, no matter its shape, has the same angle sum.",
				},
			},
			4: {
				{
					Type: "angle_triangle_missing",
					Domain: DomainAnalytical,
					Text: "A triangle has two angles measuring {a} degrees and {b} degrees. What is the third angle?",
					Params: map[string]ParamSpec{
						"a": {Min: 20, Max: 70},
						"b": {Min: 20, Max: 70},
					},
					Rule: Rule{Kind: RuleSum, A: -1, B: 180, Params: []string{"a", "b"}},
					Hint: "All three angles add up to 180 degrees.",
				},
			},
		},
	}
}
