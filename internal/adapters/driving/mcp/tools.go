package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

// FindKeyInput is the input schema for the find_translation_key tool.
type FindKeyInput struct {
	Query        string `json:"query" jsonschema:"the on-page text to find the translation key for"`
	Limit        int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	MinRelevance int    `json:"min_relevance,omitempty" jsonschema:"drop results below this relevance percentage"`
	Fuzzy        bool   `json:"fuzzy,omitempty" jsonschema:"include approximate matches"`
}

// FindKeyOutput is the output schema for the find_translation_key tool.
type FindKeyOutput struct {
	Results []KeyResultOutput `json:"results"`
	Count   int               `json:"count"`
}

// KeyResultOutput represents a single matched key.
type KeyResultOutput struct {
	Key        string  `json:"key"`
	Value      string  `json:"value"`
	Score      float64 `json:"score"`
	Relevance  int     `json:"relevance"`
	Confidence string  `json:"confidence"`
}

// ExtractInput is the input schema for the extract_translations tool.
type ExtractInput struct{}

// ExtractOutput is the output schema for the extract_translations tool.
type ExtractOutput struct {
	DataSource string `json:"data_source"`
	Strategy   string `json:"strategy"`
	Language   string `json:"language,omitempty"`
	Count      int    `json:"count"`
}

// ResolveInput is the input schema for the resolve_element_text tool.
type ResolveInput struct {
	HTML string `json:"html" jsonschema:"the HTML fragment to extract display text from"`
}

// ResolveOutput is the output schema for the resolve_element_text tool.
type ResolveOutput struct {
	Text string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_translation_key",
		Description: "Find the i18n key behind text seen on the captured page",
	}, s.handleFindKey)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_translations",
		Description: "Extract the translation dictionary from the captured page",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_element_text",
		Description: "Extract the human-visible text from an HTML fragment",
	}, s.handleResolve)
}

// handleFindKey handles the find_translation_key tool invocation.
func (s *Server) handleFindKey(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindKeyInput,
) (*mcp.CallToolResult, FindKeyOutput, error) {
	batch, ok := s.ports.Extraction.Current()
	if !ok {
		var err error
		batch, err = s.ports.Extraction.Extract(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNoTranslationData) {
				return nil, FindKeyOutput{}, errors.New("no translation data found on the captured page")
			}
			return nil, FindKeyOutput{}, err
		}
	}

	opts := domain.SearchOptions{
		Limit:               input.Limit,
		MinRelevancePercent: input.MinRelevance,
		Fuzzy:               input.Fuzzy,
	}
	results, err := s.ports.Search.Search(batch.Records, input.Query, opts)
	if err != nil {
		return nil, FindKeyOutput{}, err
	}

	if s.ports.History != nil && len(results) > 0 {
		top := results[0]
		// Best effort; a history failure must not fail the lookup.
		_ = s.ports.History.RecordLookup(ctx, input.Query, top.Record().Key(), string(top.Confidence()))
	}

	output := FindKeyOutput{
		Results: make([]KeyResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = KeyResultOutput{
			Key:        results[i].Record().Key(),
			Value:      results[i].Record().Value(),
			Score:      results[i].Score(),
			Relevance:  results[i].RelevancePercent(),
			Confidence: string(results[i].Confidence()),
		}
	}
	return nil, output, nil
}

// handleExtract handles the extract_translations tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	batch, err := s.ports.Extraction.Extract(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoTranslationData) {
			return nil, ExtractOutput{}, errors.New("no translation data found on the captured page")
		}
		return nil, ExtractOutput{}, err
	}

	return nil, ExtractOutput{
		DataSource: batch.SourceLabel,
		Strategy:   batch.Strategy.String(),
		Language:   batch.Language,
		Count:      len(batch.Records),
	}, nil
}

// handleResolve handles the resolve_element_text tool invocation.
func (s *Server) handleResolve(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	text, err := s.ports.Resolver.ResolveText(input.HTML)
	if err != nil {
		return nil, ResolveOutput{}, err
	}
	return nil, ResolveOutput{Text: text}, nil
}
