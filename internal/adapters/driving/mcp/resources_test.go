package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

// TestExtractionResource tests reading the cached batch
func TestExtractionResource(t *testing.T) {
	server, err := NewServer(&Ports{
		Extraction: &mockExtraction{batch: testBatch(t), cached: true},
		Search:     &mockSearch{},
		Resolver:   &mockResolver{},
	})
	require.NoError(t, err)

	result, err := server.handleExtractionResource(context.Background(),
		readRequest("keyscout://extraction/current"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, "greeting.hello")
	assert.Contains(t, result.Contents[0].Text, "scoped-dict")
}

// TestExtractionResource_Empty tests the not-found outcome before any
// extraction has run
func TestExtractionResource_Empty(t *testing.T) {
	server, err := NewServer(validPorts())
	require.NoError(t, err)

	_, err = server.handleExtractionResource(context.Background(),
		readRequest("keyscout://extraction/current"))

	assert.Error(t, err)
}

// TestHistoryResource tests reading recent lookups
func TestHistoryResource(t *testing.T) {
	history := &mockHistory{lookups: []driven.Lookup{
		{Query: "pay now", Key: "pay.button", Confidence: "high"},
	}}
	ports := validPorts()
	ports.History = history
	server, err := NewServer(ports)
	require.NoError(t, err)

	result, err := server.handleHistoryResource(context.Background(),
		readRequest("keyscout://history/recent"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, "pay.button")
}

// TestHistoryResource_NoStore tests the empty list when history is disabled
func TestHistoryResource_NoStore(t *testing.T) {
	server, err := NewServer(validPorts())
	require.NoError(t, err)

	result, err := server.handleHistoryResource(context.Background(),
		readRequest("keyscout://history/recent"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "[]", result.Contents[0].Text)
}
