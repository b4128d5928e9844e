package engine

import (
	"strconv"
	"strings"
)

// renderText substitutes every {name} placeholder with its sampled value.
// Placeholders may repeat; all occurrences are replaced.
func renderText(pattern string, params map[string]int) string {
	out := pattern
	for name, value := range params {
		out = strings.ReplaceAll(out, "{"+name+"}", strconv.Itoa(value))
	}
	return out
}

// realWorldVariants maps template types to narrative rephrasings. Patterns
// carry the same {name} placeholders as the originals.
var realWorldVariants = map[string][]string{
	"square_perimeter": {
		"Maya is putting a ribbon border around a square picture frame with sides of {side} cm. How much ribbon does she need?",
		"A square playground has sides of {side} meters. How far do you walk to go once around it?",
	},
	"rectangle_area": {
		"A rug is {length} feet long and {width} feet wide. How many square feet of floor does it cover?",
		"A vegetable patch measures {length} meters by {width} meters. What is its area?",
	},
	"circle_area": {
		"A circular pizza has a radius of {radius} inches. What is the area of the pizza? Round to 2 decimal places.",
		"A round pond has a radius of {radius} meters. How much surface does the water cover? Round to 2 decimal places.",
	},
	"circle_circumference": {
		"A bicycle wheel has a radius of {radius} inches. How far does it roll in one full turn? Round to 2 decimal places.",
	},
	"cube_volume": {
		"A gift box is a cube with edges of {edge} cm. How much space is inside it?",
	},
	"triangle_area": {
		"A triangular sail has a base of {base} meters and a height of {height} meters. How much fabric is that?",
	},
	"rectangle_perimeter": {
		"A picture frame is {length} cm long and {width} cm wide. What length of wood went around its edge?",
	},
	"box_volume": {
		"A moving box is {length} cm long, {width} cm wide, and {height} cm tall. How many cubic centimeters fit inside?",
	},
}

// visualVariants maps template types to a single figure-based rephrasing.
var visualVariants = map[string]string{
	"square_perimeter":     "Look at the square shown, with each side marked {side} units. What is its perimeter?",
	"square_area":          "Look at the square shown, with each side marked {side} units. What is its area?",
	"rectangle_area":       "The rectangle shown is {length} units across and {width} units tall. What is its area?",
	"rectangle_perimeter":  "The rectangle shown is {length} units across and {width} units tall. What is its perimeter?",
	"triangle_area":        "The triangle shown has a base of {base} units and a height of {height} units. What is its area?",
	"circle_area":          "The circle shown has a radius of {radius} units. What is its area? Round to 2 decimal places.",
	"circle_circumference": "The circle shown has a radius of {radius} units. What is its circumference? Round to 2 decimal places.",
	"cube_volume":          "The cube shown has edges of {edge} units. What is its volume?",
}

const (
	realWorldPrefix = "Here's a real-world scenario: "
	visualPrefix    = "[Visual representation] "
)

// transformText rewrites rendered question text for the requested
// representation. Text mode is the identity. Real-world mode picks one of
// the per-type narrative variants at random, falling back to a generic
// framing prefix; visual mode uses the per-type figure description, falling
// back to a generic prefix.
func transformText(text, templateType string, params map[string]int, mode Representation, g rng) string {
	switch mode {
	case RepresentationRealWorld:
		if variants := realWorldVariants[templateType]; len(variants) > 0 {
			return renderText(variants[g.IntN(len(variants))], params)
		}
		return realWorldPrefix + text
	case RepresentationVisual:
		if v, ok := visualVariants[templateType]; ok {
			return renderText(v, params)
		}
		return visualPrefix + text
	default:
		return text
	}
}
