package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for KeyScout resources.
const uriScheme = "keyscout://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the current extraction batch.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "extraction/current",
		Name:        "current-extraction",
		Description: "Translation records extracted from the captured page",
		MIMEType:    "application/json",
	}, s.handleExtractionResource)

	// Static resource for recent lookup history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history/recent",
		Name:        "recent-lookups",
		Description: "The most recent key lookups",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleExtractionResource returns the cached extraction batch.
func (s *Server) handleExtractionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	batch, ok := s.ports.Extraction.Current()
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type recordInfo struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	type batchInfo struct {
		DataSource string       `json:"data_source"`
		Strategy   string       `json:"strategy"`
		Language   string       `json:"language,omitempty"`
		Records    []recordInfo `json:"records"`
	}

	info := batchInfo{
		DataSource: batch.SourceLabel,
		Strategy:   batch.Strategy.String(),
		Language:   batch.Language,
		Records:    make([]recordInfo, len(batch.Records)),
	}
	for i, r := range batch.Records {
		info.Records[i] = recordInfo{Key: r.Key(), Value: r.Value()}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling extraction: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns recent lookups.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	lookups, err := s.ports.History.Recent(ctx, 20)
	if err != nil {
		return nil, fmt.Errorf("listing lookups: %w", err)
	}

	type lookupInfo struct {
		Query      string `json:"query"`
		Key        string `json:"key,omitempty"`
		Confidence string `json:"confidence,omitempty"`
		CreatedAt  string `json:"created_at"`
	}

	infos := make([]lookupInfo, len(lookups))
	for i, l := range lookups {
		infos[i] = lookupInfo{
			Query:      l.Query,
			Key:        l.Key,
			Confidence: l.Confidence,
			CreatedAt:  l.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling lookups: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
