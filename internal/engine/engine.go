package engine

import (
	"fmt"
	"time"

	"github.com/abhisek/mathforge/internal/catalog"
)

// Config controls engine behavior outside the generation algorithm itself.
type Config struct {
	// Debugf receives one line per resolver fallback decision. Default is a
	// no-op; the CLI wires it to stderr.
	Debugf func(format string, args ...any)

	// Now supplies timestamps (and fresh seeds for regeneration). Default
	// is time.Now; tests substitute a fixed clock.
	Now func() time.Time
}

// DefaultConfig returns a Config with a silent debug hook and the real clock.
func DefaultConfig() Config {
	return Config{
		Debugf: func(string, ...any) {},
		Now:    time.Now,
	}
}

// Engine generates questions from an immutable template registry. Generation
// is pure and performs no I/O; one Engine is safe for concurrent use because
// each call owns its randomness and the registry is read-only.
type Engine struct {
	reg *catalog.Registry
	cfg Config
}

// New creates an Engine over a loaded registry.
func New(reg *catalog.Registry, cfg Config) *Engine {
	if cfg.Debugf == nil {
		cfg.Debugf = func(string, ...any) {}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{reg: reg, cfg: cfg}
}

// Registry exposes the engine's registry for introspection and the
// deliberate Add extension point.
func (e *Engine) Registry() *catalog.Registry {
	return e.reg
}

// Generate produces one Question for the request. Identical seeds yield
// identical content (parameters, text, options, order); the ID suffix stays
// random by design.
func (e *Engine) Generate(req Request) (*Question, error) {
	rep := req.Representation
	if rep == "" {
		rep = RepresentationText
	}

	g := newRNG(req.Seed)

	tpl, err := e.resolve(req.Difficulty, req.TopicFilter, req.Domain, req.ExcludeTypes, g)
	if err != nil {
		return nil, err
	}

	return e.build(tpl, req, rep, g, false)
}

// build runs the pipeline downstream of template selection: sample, render,
// evaluate, assemble, validate, stamp.
func (e *Engine) build(tpl catalog.Template, req Request, rep Representation, g rng, regenerated bool) (*Question, error) {
	params := sampleParams(tpl.Params, req.Seed, req.Mastery, g)

	text := renderText(tpl.Text, params)
	text = transformText(text, tpl.Type, params, rep, g)

	sol, err := tpl.Rule.Eval(params)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", tpl.Type, err)
	}

	var value SolutionValue
	if sol.IsIndex {
		value = SolutionValue{Label: tpl.FixedChoices[sol.Index], IsLabel: true}
	} else {
		value = SolutionValue{Number: round2(sol.Value)}
	}

	options, err := assembleOptions(tpl, sol, params, g)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", tpl.Type, err)
	}

	return &Question{
		ID:             buildID(req.Difficulty, tpl.Type, params),
		ChapterID:      req.ChapterID,
		Text:           text,
		Type:           tpl.Type,
		Difficulty:     req.Difficulty,
		Domain:         tpl.Domain,
		Representation: rep,
		Parameters:     params,
		Solution:       value,
		Options:        options,
		Hint:           tpl.Hint,
		GeneratedAt:    e.cfg.Now(),
		IsGenerated:    true,
		IsRegenerated:  regenerated,
	}, nil
}

// GenerateBatch produces count questions at one difficulty, seeding each
// call with its index so batches are stable question-by-question.
func (e *Engine) GenerateBatch(difficulty int, chapterID string, count int) ([]*Question, error) {
	questions := make([]*Question, 0, count)
	for i := 0; i < count; i++ {
		seed := int64(i)
		q, err := e.Generate(Request{
			Difficulty: difficulty,
			ChapterID:  chapterID,
			Seed:       &seed,
		})
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// GenerateByDomain produces a question for a cognitive domain, selecting the
// difficulty implicitly from the levels that have matching templates.
func (e *Engine) GenerateByDomain(domain catalog.CognitiveDomain, chapterID string, seed *int64) (*Question, error) {
	var levels []int
	for _, level := range e.reg.LevelsWithTemplates() {
		for _, d := range e.reg.DomainsFor(level) {
			if d == domain {
				levels = append(levels, level)
				break
			}
		}
	}
	if len(levels) == 0 {
		return nil, &NoTemplatesAvailableError{Domain: domain}
	}

	g := newRNG(seed)
	level := levels[g.IntN(len(levels))]

	return e.Generate(Request{
		Difficulty: level,
		ChapterID:  chapterID,
		Seed:       seed,
		Domain:     domain,
	})
}
