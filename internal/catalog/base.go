package catalog

import "math"

// baseCatalog returns the built-in template set. It covers all five
// difficulty levels; level 5 exists only here (topic catalogs stop at 4).
func baseCatalog() Catalog {
	return Catalog{
		Name: "base",
		Levels: map[int][]Template{
			1: {
				{
					Type:   "square_perimeter",
					Domain: DomainProcedural,
					Text:   "Find the perimeter of a square with side length {side} units.",
					Params: map[string]ParamSpec{"side": {Min: 3, Max: 15}},
					Rule:   Rule{Kind: RuleProduct, A: 4, Params: []string{"side"}},
					Hint:   "A square has 4 equal sides. Perimeter = 4 × side.",
				},
				{
					Type:   "square_area",
					Domain: DomainProcedural,
					Text:   "Find the area of a square with side length {side} units.",
					Params: map[string]ParamSpec{"side": {Min: 3, Max: 12}},
					Rule:   Rule{Kind: RuleProduct, A: 1, Params: []string{"side", "side"}},
					Hint:   "Area of a square = side × side.",
				},
				{
					Type: "rectangle_area",
					Domain: DomainProcedural,
					Text: "Find the area of a rectangle with length {length} units and width {width} units.",
					Params: map[string]ParamSpec{
						"length": {Min: 4, Max: 15},
						"width":  {Min: 2, Max: 10},
					},
					Rule: Rule{Kind: RuleProduct, A: 1, Params: []string{"length", "width"}},
					Hint: "Area of a rectangle = length × width.",
				},
				{
					Type:   "circle_area",
					Domain: DomainProcedural,
					Text:   "Find the area of a circle with radius {radius} units. Round to 2 decimal places.",
					Params: map[string]ParamSpec{"radius": {Min: 2, Max: 10}},
					Rule:   Rule{Kind: RuleProduct, A: math.Pi, Params: []string{"radius", "radius"}},
					Hint:   "Area of a circle = π × radius².",
				},
			},
			2: {
				{
					Type: "rectangle_perimeter",
					Domain: DomainProcedural,
					Text: "Find the perimeter of a rectangle with length {length} units and width {width} units.",
					Params: map[string]ParamSpec{
						"length": {Min: 5, Max: 20},
						"width":  {Min: 3, Max: 12},
					},
					Rule: Rule{Kind: RuleSum, A: 2, Params: []string{"length", "width"}},
					Hint: "Perimeter of a rectangle = 2 × (length + width).",
				},
				{
					Type: "triangle_area",
					Domain: DomainProcedural,
					Text: "Find the area of a triangle with base {base} units and height {height} units.",
					Params: map[string]ParamSpec{
						"base":   {Min: 4, Max: 16, Step: 2},
						"height": {Min: 3, Max: 12},
					},
					Rule: Rule{Kind: RuleProduct, A: 0.5, Params: []string{"base", "height"}},
					Hint: "Area of a triangle = ½ × base × height.",
				},
				{
					Type:   "circle_circumference",
					Domain: DomainProcedural,
					Text:   "Find the circumference of a circle with radius {radius} units. Round to 2 decimal places.",
					Params: map[string]ParamSpec{"radius": {Min: 2, Max: 12}},
					Rule:   Rule{Kind: RuleProduct, A: 2 * math.Pi, Params: []string{"radius"}},
					Hint:   "Circumference = 2 × π × radius.",
				},
				{
					Type: "parallelogram_area",
					Domain: DomainProcedural,
					Text: "Find the area of a parallelogram with base {base} units and height {height} units.",
					Params: map[string]ParamSpec{
						"base":   {Min: 5, Max: 15},
						"height": {Min: 3, Max: 10},
					},
					Rule: Rule{Kind: RuleProduct, A: 1, Params: []string{"base", "height"}},
					Hint: "Area of a parallelogram = base × height.",
				},
			},
			3: {
				{
					Type:   "cube_volume",
					Domain: DomainProcedural,
					Text:   "Find the volume of a cube with edge length {edge} units.",
					Params: map[string]ParamSpec{"edge": {Min: 2, Max: 10}},
					Rule:   Rule{Kind: RuleProduct, A: 1, Params: []string{"edge", "edge", "edge"}},
					Hint:   "Volume of a cube = edge × edge × edge.",
				},
				{
					Type: "box_volume",
					Domain: DomainProcedural,
					Text: "Find the volume of a rectangular box with length {length}, width {width}, and height {height} units.",
					Params: map[string]ParamSpec{
						"length": {Min: 3, Max: 12},
						"width":  {Min: 2, Max: 8},
						"height": {Min: 2, Max: 10},
					},
					Rule: Rule{Kind: RuleProduct, A: 1, Params: []string{"length", "width", "height"}},
					Hint: "Volume of a box = length × width × height.",
				},
				{
					Type: "rhombus_area",
					Domain: DomainAnalytical,
					Text: "Find the area of a rhombus whose diagonals measure {d1} units and {d2} units.",
					Params: map[string]ParamSpec{
						"d1": {Min: 4, Max: 14, Step: 2},
						"d2": {Min: 4, Max: 14, Step: 2},
					},
					Rule: Rule{Kind: RuleProduct, A: 0.5, Params: []string{"d1", "d2"}},
					Hint: "Area of a rhombus = ½ × d1 × d2.",
				},
			},
			4: {
				{
					Type: "cylinder_volume",
					Domain: DomainAnalytical,
					Text: "Find the volume of a cylinder with radius {radius} units and height {height} units. Round to 2 decimal places.",
					Params: map[string]ParamSpec{
						"radius": {Min: 2, Max: 8},
						"height": {Min: 4, Max: 15},
					},
					Rule: Rule{Kind: RuleProduct, A: math.Pi, Params: []string{"radius", "radius", "height"}},
					Hint: "Volume of a cylinder = π × radius² × height.",
				},
				{
					Type: "cone_volume",
					Domain: DomainHigherOrder,
					Text: "Find the volume of a cone with radius {radius} units and height {height} units. Round to 2 decimal places.",
					Params: map[string]ParamSpec{
						"radius": {Min: 2, Max: 7},
						"height": {Min: 3, Max: 12},
					},
					Rule: Rule{Kind: RuleProduct, A: math.Pi / 3, Params: []string{"radius", "radius", "height"}},
					Hint: "Volume of a cone = ⅓ × π × radius² × height.",
				},
				{
					Type: "triangle_prism_volume",
					Domain: DomainAnalytical,
					Text: "A prism has a triangular base with base {base} units and height {height} units, and the prism is {depth} units deep. Find its volume.",
					Params: map[string]ParamSpec{
						"base":   {Min: 4, Max: 12, Step: 2},
						"height": {Min: 3, Max: 10},
						"depth":  {Min: 5, Max: 15},
					},
					Rule: Rule{Kind: RuleProduct, A: 0.5, Params: []string{"base", "height", "depth"}},
					Hint: "Volume of a prism = base area × depth.",
				},
			},
			5: {
				{
					Type:   "sphere_volume",
					Domain: DomainHigherOrder,
					Text:   "Find the volume of a sphere with radius {radius} units. Round to 2 decimal places.",
					Params: map[string]ParamSpec{"radius": {Min: 2, Max: 9}},
					Rule:   Rule{Kind: RuleProduct, A: 4 * math.Pi / 3, Params: []string{"radius", "radius", "radius"}},
					Hint:   "Volume of a sphere = 4/3 × π × radius³.",
				},
				{
					Type:   "sphere_surface_area",
					Domain: DomainHigherOrder,
					Text:   "Find the surface area of a sphere with radius {radius} units. Round to 2 decimal places.",
					Params: map[string]ParamSpec{"radius": {Min: 2, Max: 10}},
					Rule:   Rule{Kind: RuleProduct, A: 4 * math.Pi, Params: []string{"radius", "radius"}},
					Hint:   "Surface area of a sphere = 4 × π × radius².",
				},
				{
					Type:   "regular_polygon_angle_sum",
					Domain: DomainAnalytical,
					Text:   "What is the sum of the interior angles of a polygon with {sides} sides, in degrees?",
					Params: map[string]ParamSpec{"sides": {Min: 5, Max: 12}},
					Rule:   Rule{Kind: RuleSum, A: 180, B: -360, Params: []string{"sides"}},
					Hint:   "Interior angle sum = (n − 2) × 180.",
				},
			},
		},
	}
}
