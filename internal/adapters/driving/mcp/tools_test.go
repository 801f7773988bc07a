package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

func testBatch(t *testing.T) domain.ExtractionBatch {
	t.Helper()
	record, err := domain.NewTranslationRecord("greeting.hello", "Hello there")
	require.NoError(t, err)
	return domain.ExtractionBatch{
		ID:          "batch-1",
		Records:     []domain.TranslationRecord{record},
		SourceLabel: "scoped-dict",
		Strategy:    domain.StrategyDetail,
		Language:    "en",
	}
}

func testResults(t *testing.T) []domain.SearchResult {
	t.Helper()
	record, err := domain.NewTranslationRecord("greeting.hello", "Hello there")
	require.NoError(t, err)
	result, err := domain.NewSearchResult(record, 0.0, 0)
	require.NoError(t, err)
	return []domain.SearchResult{result}
}

// TestHandleFindKey_Success tests the happy path with a cached batch
func TestHandleFindKey_Success(t *testing.T) {
	extraction := &mockExtraction{batch: testBatch(t), cached: true}
	server, err := NewServer(&Ports{
		Extraction: extraction,
		Search:     &mockSearch{results: testResults(t)},
		Resolver:   &mockResolver{},
	})
	require.NoError(t, err)

	_, output, err := server.handleFindKey(context.Background(), nil, FindKeyInput{Query: "hello there"})

	require.NoError(t, err)
	require.Equal(t, 1, output.Count)
	assert.Equal(t, "greeting.hello", output.Results[0].Key)
	assert.Equal(t, 0.0, output.Results[0].Score)
	assert.Equal(t, 100, output.Results[0].Relevance)
	assert.Equal(t, "perfect", output.Results[0].Confidence)
	// Cached batch means no fresh extraction.
	assert.Equal(t, 0, extraction.extracted)
}

// TestHandleFindKey_ExtractsWhenNoCache tests the fallback extraction
func TestHandleFindKey_ExtractsWhenNoCache(t *testing.T) {
	extraction := &mockExtraction{batch: testBatch(t)}
	server, err := NewServer(&Ports{
		Extraction: extraction,
		Search:     &mockSearch{results: testResults(t)},
		Resolver:   &mockResolver{},
	})
	require.NoError(t, err)

	_, _, err = server.handleFindKey(context.Background(), nil, FindKeyInput{Query: "hello"})

	require.NoError(t, err)
	assert.Equal(t, 1, extraction.extracted)
}

// TestHandleFindKey_NoData tests the no-translation-data error path
func TestHandleFindKey_NoData(t *testing.T) {
	server, err := NewServer(&Ports{
		Extraction: &mockExtraction{err: domain.ErrNoTranslationData},
		Search:     &mockSearch{},
		Resolver:   &mockResolver{},
	})
	require.NoError(t, err)

	_, _, err = server.handleFindKey(context.Background(), nil, FindKeyInput{Query: "hello"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no translation data")
}

// TestHandleFindKey_RecordsHistory tests best-effort lookup recording
func TestHandleFindKey_RecordsHistory(t *testing.T) {
	history := &mockHistory{}
	server, err := NewServer(&Ports{
		Extraction: &mockExtraction{batch: testBatch(t), cached: true},
		Search:     &mockSearch{results: testResults(t)},
		Resolver:   &mockResolver{},
		History:    history,
	})
	require.NoError(t, err)

	_, _, err = server.handleFindKey(context.Background(), nil, FindKeyInput{Query: "hello there"})

	require.NoError(t, err)
	require.Len(t, history.lookups, 1)
	assert.Equal(t, "hello there", history.lookups[0].Query)
	assert.Equal(t, "greeting.hello", history.lookups[0].Key)
}

// TestHandleFindKey_HistoryFailureIgnored tests that a failing history
// store does not fail the lookup
func TestHandleFindKey_HistoryFailureIgnored(t *testing.T) {
	server, err := NewServer(&Ports{
		Extraction: &mockExtraction{batch: testBatch(t), cached: true},
		Search:     &mockSearch{results: testResults(t)},
		Resolver:   &mockResolver{},
		History:    &mockHistory{failing: true},
	})
	require.NoError(t, err)

	_, output, err := server.handleFindKey(context.Background(), nil, FindKeyInput{Query: "hello"})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
}

// TestHandleExtract_Success tests the extract_translations tool
func TestHandleExtract_Success(t *testing.T) {
	server, err := NewServer(&Ports{
		Extraction: &mockExtraction{batch: testBatch(t)},
		Search:     &mockSearch{},
		Resolver:   &mockResolver{},
	})
	require.NoError(t, err)

	_, output, err := server.handleExtract(context.Background(), nil, ExtractInput{})

	require.NoError(t, err)
	assert.Equal(t, "scoped-dict", output.DataSource)
	assert.Equal(t, "detail", output.Strategy)
	assert.Equal(t, "en", output.Language)
	assert.Equal(t, 1, output.Count)
}

// TestHandleResolve tests the resolve_element_text tool
func TestHandleResolve(t *testing.T) {
	server, err := NewServer(&Ports{
		Extraction: &mockExtraction{},
		Search:     &mockSearch{},
		Resolver:   &mockResolver{text: "Pay now"},
	})
	require.NoError(t, err)

	_, output, err := server.handleResolve(context.Background(), nil, ResolveInput{HTML: "<b>Pay now</b>"})

	require.NoError(t, err)
	assert.Equal(t, "Pay now", output.Text)
}
