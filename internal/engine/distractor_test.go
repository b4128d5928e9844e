package engine

import (
	"math"
	"testing"
)

func assertDistractorInvariants(t *testing.T, answer float64, ds []float64) {
	t.Helper()
	if len(ds) != 3 {
		t.Fatalf("got %d distractors, want 3: %v", len(ds), ds)
	}
	seen := make(map[float64]bool)
	for _, d := range ds {
		if d <= 0 {
			t.Errorf("non-positive distractor %v", d)
		}
		if d == answer {
			t.Errorf("distractor equals the answer %v", answer)
		}
		if seen[d] {
			t.Errorf("duplicate distractor %v", d)
		}
		seen[d] = true
	}
}

func TestSynthesize_CountFamily(t *testing.T) {
	ds := synthesizeDistractors(6, "polygon_sides_hexagon", nil)
	assertDistractorInvariants(t, 6, ds)
	for _, d := range ds {
		if d < 3 || d > 12 {
			t.Errorf("count distractor %v outside [3,12]", d)
		}
		if !isWholeNumber(d) {
			t.Errorf("count distractor %v not integral", d)
		}
	}
}

func TestSynthesize_CountFamily_EdgeOfPool(t *testing.T) {
	// Answer at the low edge: -1/-2 neighbors fall below 3 and the pool
	// padding must fill in.
	ds := synthesizeDistractors(3, "polygon_sides_triangle", nil)
	assertDistractorInvariants(t, 3, ds)
	for _, d := range ds {
		if d < 3 || d > 12 {
			t.Errorf("count distractor %v outside [3,12]", d)
		}
	}
}

func TestSynthesize_AngleCanonical(t *testing.T) {
	for _, answer := range []float64{90, 180, 360} {
		ds := synthesizeDistractors(answer, "angle_right", nil)
		assertDistractorInvariants(t, answer, ds)
	}
}

func TestSynthesize_AngleComplementSupplement(t *testing.T) {
	// 60 degrees: complement 30, supplement 120, and +-30 offsets since 60
	// is a multiple of 30.
	ds := synthesizeDistractors(60, "angle_complementary", map[string]int{"angle": 30})
	assertDistractorInvariants(t, 60, ds)
	if ds[0] != 30 || ds[1] != 120 {
		t.Errorf("expected complement 30 and supplement 120 first, got %v", ds)
	}
}

func TestSynthesize_AngleSumFamily(t *testing.T) {
	// Pentagon interior sum.
	ds := synthesizeDistractors(540, "polygon_interior_sum", map[string]int{"sides": 5})
	assertDistractorInvariants(t, 540, ds)
	expectContains(t, ds, 720) // off-by-one vertex
	expectContains(t, ds, 360)
	for _, d := range ds {
		if d > 3600 {
			t.Errorf("angle sum distractor %v exceeds 3600", d)
		}
	}
}

func TestSynthesize_AreaFamily(t *testing.T) {
	// Triangle area 24 from base 8, height 6: the forgotten-half error
	// (48) must be present, plus the additive error 24+8.
	params := map[string]int{"base": 8, "height": 6}
	ds := synthesizeDistractors(24, "triangle_area", params)
	assertDistractorInvariants(t, 24, ds)
	expectContains(t, ds, 48)
	expectContains(t, ds, 12)
}

func TestSynthesize_VolumeFamily(t *testing.T) {
	// Box 3x4x5 = 60; dropping the height dimension gives 12.
	params := map[string]int{"length": 3, "width": 4, "height": 5}
	ds := synthesizeDistractors(60, "box_volume", params)
	assertDistractorInvariants(t, 60, ds)
	expectContains(t, ds, 12)
}

func TestSynthesize_CircumferenceFamily(t *testing.T) {
	ds := synthesizeDistractors(31.42, "circle_circumference", map[string]int{"radius": 5})
	assertDistractorInvariants(t, 31.42, ds)
	expectContains(t, ds, 15.71) // radius/diameter confusion
	expectContains(t, ds, 62.84)
}

func TestSynthesize_FallbackFamily(t *testing.T) {
	ds := synthesizeDistractors(7, "mystery_quantity", nil)
	assertDistractorInvariants(t, 7, ds)
}

func TestSynthesize_FallbackSmallAnswerUsesFloor(t *testing.T) {
	// |answer|*0.3 < 10, so the magnitude floor of 10 applies and keeps
	// distractors visibly apart.
	ds := synthesizeDistractors(2, "mystery_quantity", nil)
	assertDistractorInvariants(t, 2, ds)
	spread := 0.0
	for _, d := range ds {
		spread = math.Max(spread, math.Abs(d-2))
	}
	if spread < 3 {
		t.Errorf("expected floor-driven spread, max deviation %v", spread)
	}
}

func TestSynthesize_IntegerAnswersGetIntegerDistractors(t *testing.T) {
	ds := synthesizeDistractors(40, "square_perimeter", map[string]int{"side": 10})
	assertDistractorInvariants(t, 40, ds)
	for _, d := range ds {
		if !isWholeNumber(d) {
			t.Errorf("integer answer produced decimal distractor %v", d)
		}
	}
}

func TestSynthesize_PaddingWhenFamilyStarves(t *testing.T) {
	// Angle 15: complement 75, supplement 165, 30, 0 (dropped). Never
	// fewer than 3 after padding.
	ds := synthesizeDistractors(15, "angle_vertical", map[string]int{"angle": 15})
	assertDistractorInvariants(t, 15, ds)
}

func expectContains(t *testing.T, ds []float64, want float64) {
	t.Helper()
	for _, d := range ds {
		if d == want {
			return
		}
	}
	t.Errorf("expected distractor %v in %v", want, ds)
}
