package engine

// maxResampleAttempts bounds the search for a parameter set that differs
// from the original. Templates with no parameters can only repeat.
const maxResampleAttempts = 10

// GenerateSimilar produces a fresh instance of the question's originating
// template: same type and difficulty, new parameters. A fresh time-derived
// seed forces the resample away from the original values. When the learner
// is struggling (mastery <= 2) the representation flips between visual and
// text to offer another way into the same idea. If the template can no
// longer be found, falls back to an unconstrained generation at the same
// difficulty.
func (e *Engine) GenerateSimilar(original *Question, mastery int) (*Question, error) {
	tpl, ok := e.reg.Find(original.Difficulty, original.Type)
	if !ok {
		e.cfg.Debugf("similar: template %q no longer registered at difficulty %d, generating fresh",
			original.Type, original.Difficulty)
		q, err := e.Generate(Request{
			Difficulty: original.Difficulty,
			ChapterID:  original.ChapterID,
			Mastery:    mastery,
		})
		if err != nil {
			return nil, err
		}
		q.IsRegenerated = true
		return q, nil
	}

	rep := original.Representation
	if mastery >= 1 && mastery <= 2 {
		rep = flipRepresentation(rep)
	}

	seed := e.cfg.Now().UnixNano()
	req := Request{
		Difficulty: original.Difficulty,
		ChapterID:  original.ChapterID,
		Seed:       &seed,
		Mastery:    mastery,
	}

	for attempt := 0; ; attempt++ {
		g := newRNG(req.Seed)
		q, err := e.build(tpl, req, rep, g, true)
		if err != nil {
			return nil, err
		}
		if attempt >= maxResampleAttempts || !sameParameters(q.Parameters, original.Parameters) {
			return q, nil
		}
		next := *req.Seed + int64(attempt) + 1
		req.Seed = &next
	}
}

func flipRepresentation(rep Representation) Representation {
	if rep == RepresentationVisual {
		return RepresentationText
	}
	return RepresentationVisual
}

func sameParameters(a, b map[string]int) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
