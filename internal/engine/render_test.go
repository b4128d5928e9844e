package engine

import (
	"strings"
	"testing"

	"github.com/abhisek/mathforge/internal/catalog"
)

func TestRenderText(t *testing.T) {
	got := renderText("A rectangle is {length} by {width}. Area of {length} x {width}?",
		map[string]int{"length": 7, "width": 3})
	want := "A rectangle is 7 by 3. Area of 7 x 3?"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderText_NoParams(t *testing.T) {
	pattern := "How many sides does a square have?"
	if got := renderText(pattern, nil); got != pattern {
		t.Errorf("got %q", got)
	}
}

func TestTransformText_TextIsIdentity(t *testing.T) {
	text := "Find the perimeter of a square with side length 10 units."
	got := transformText(text, "square_perimeter", map[string]int{"side": 10}, RepresentationText, newRNG(nil))
	if got != text {
		t.Errorf("text mode must be identity, got %q", got)
	}
}

func TestTransformText_RealWorldVariant(t *testing.T) {
	params := map[string]int{"side": 10}
	got := transformText("irrelevant", "square_perimeter", params, RepresentationRealWorld, newRNG(nil))
	if strings.Contains(got, "{side}") {
		t.Errorf("placeholder not substituted: %q", got)
	}
	if !strings.Contains(got, "10") {
		t.Errorf("parameter value missing from narrative: %q", got)
	}
	if strings.HasPrefix(got, realWorldPrefix) {
		t.Errorf("known type should use a variant, not the generic prefix: %q", got)
	}
}

func TestTransformText_RealWorldFallback(t *testing.T) {
	text := "What is the sum of the interior angles of a triangle, in degrees?"
	got := transformText(text, "polygon_interior_triangle", nil, RepresentationRealWorld, newRNG(nil))
	if got != realWorldPrefix+text {
		t.Errorf("expected generic framing prefix, got %q", got)
	}
}

func TestTransformText_Visual(t *testing.T) {
	params := map[string]int{"radius": 5}
	got := transformText("irrelevant", "circle_area", params, RepresentationVisual, newRNG(nil))
	if !strings.Contains(got, "5") {
		t.Errorf("parameter value missing: %q", got)
	}

	text := "How many faces does a cube have?"
	got = transformText(text, "solid_faces_cube", nil, RepresentationVisual, newRNG(nil))
	if got != visualPrefix+text {
		t.Errorf("expected visual prefix fallback, got %q", got)
	}
}

func TestRealWorldVariants_PlaceholdersMatchTemplates(t *testing.T) {
	// Every variant's placeholders must be renderable from its template's
	// parameters, or learners would see raw {name} text.
	reg := testRegistry(t)
	for typ, variants := range realWorldVariants {
		tpl, ok := findAnywhere(reg, typ)
		if !ok {
			t.Errorf("real-world variant for unregistered type %q", typ)
			continue
		}
		params := map[string]int{}
		for name := range tpl.Params {
			params[name] = 1
		}
		for _, v := range variants {
			rendered := renderText(v, params)
			if strings.Contains(rendered, "{") {
				t.Errorf("%s: unsubstituted placeholder in %q", typ, rendered)
			}
		}
	}
}

func TestVisualVariants_PlaceholdersMatchTemplates(t *testing.T) {
	reg := testRegistry(t)
	for typ, v := range visualVariants {
		tpl, ok := findAnywhere(reg, typ)
		if !ok {
			t.Errorf("visual variant for unregistered type %q", typ)
			continue
		}
		params := map[string]int{}
		for name := range tpl.Params {
			params[name] = 1
		}
		if rendered := renderText(v, params); strings.Contains(rendered, "{") {
			t.Errorf("%s: unsubstituted placeholder in %q", typ, rendered)
		}
	}
}

func findAnywhere(reg *catalog.Registry, typ string) (catalog.Template, bool) {
	for _, level := range reg.LevelsWithTemplates() {
		if tpl, ok := reg.Find(level, typ); ok {
			return tpl, true
		}
	}
	return catalog.Template{}, false
}
