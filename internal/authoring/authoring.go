// Package authoring drafts new topic catalogs with an LLM. The model is
// asked for JSON matching the topic catalog contract; drafts are then
// parsed and validated exactly like hand-written catalog files before
// they reach an author's editor.
package authoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathforge/internal/catalog"
	"github.com/abhisek/mathforge/internal/llm"
)

// Config holds drafting parameters.
type Config struct {
	// MaxTokens bounds the drafted catalog size.
	MaxTokens int

	// Temperature controls variety across drafts. Authoring wants some.
	Temperature float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// DraftRequest describes the catalog to draft.
type DraftRequest struct {
	// Topic is what the templates should cover, e.g. "fractions".
	Topic string

	// Name is the catalog name. Defaults to Topic.
	Name string

	// Levels lists the difficulty levels to populate (1-4).
	// Defaults to 1, 2, 3.
	Levels []int

	// PerLevel is how many templates to draft per level. Default: 3.
	PerLevel int

	// Notes is extra guidance passed through to the model.
	Notes string
}

// Service drafts catalogs through an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Service.
func New(p llm.Provider, cfg Config) *Service {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return &Service{provider: p, cfg: cfg}
}

// DraftCatalog asks the model for a topic catalog and validates the
// result. The returned raw JSON is loader-compatible and can be written
// to a catalog file as-is.
func (s *Service) DraftCatalog(ctx context.Context, req DraftRequest) (catalog.Catalog, json.RawMessage, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return catalog.Catalog{}, nil, err
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserPrompt(req)}},
		Schema:      draftSchema(),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return catalog.Catalog{}, nil, fmt.Errorf("draft catalog: %w", err)
	}

	drafted, err := catalog.ParseCatalog(resp.Content)
	if err != nil {
		return catalog.Catalog{}, nil, fmt.Errorf("drafted catalog rejected: %w", err)
	}

	// Schema validation can't catch semantic problems (undeclared
	// placeholders, out-of-range choice indices). Run the full load path.
	if _, err := catalog.Load(drafted); err != nil {
		return catalog.Catalog{}, nil, fmt.Errorf("drafted catalog rejected: %w", err)
	}

	return drafted, resp.Content, nil
}

func normalizeRequest(req DraftRequest) (DraftRequest, error) {
	if req.Topic == "" {
		return req, fmt.Errorf("topic is required")
	}
	if req.Name == "" {
		req.Name = req.Topic
	}
	if len(req.Levels) == 0 {
		req.Levels = []int{1, 2, 3}
	}
	for _, l := range req.Levels {
		if l < 1 || l > 4 {
			return req, fmt.Errorf("level %d out of range: topic catalogs cover levels 1-4", l)
		}
	}
	if req.PerLevel <= 0 {
		req.PerLevel = 3
	}
	return req, nil
}

// draftSchema wraps the topic catalog contract for structured output.
func draftSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "topic-catalog",
		Description: "A topic catalog of parameterized math question templates, grouped by difficulty level.",
		Definition:  catalog.SchemaDefinition(),
	}
}
