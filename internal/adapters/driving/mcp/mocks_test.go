package mcp

import (
	"context"
	"errors"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
)

// mockExtraction serves a fixed batch, optionally only via Extract.
type mockExtraction struct {
	batch      domain.ExtractionBatch
	cached     bool
	err        error
	extracted  int
	laterCalls int
}

func (m *mockExtraction) Extract(_ context.Context) (domain.ExtractionBatch, error) {
	m.extracted++
	if m.err != nil {
		return domain.ExtractionBatch{}, m.err
	}
	return m.batch, nil
}

func (m *mockExtraction) ExtractLater(_ context.Context) {
	m.laterCalls++
}

func (m *mockExtraction) Watch(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockExtraction) Current() (domain.ExtractionBatch, bool) {
	if !m.cached {
		return domain.ExtractionBatch{}, false
	}
	return m.batch, true
}

// mockSearch returns fixed results.
type mockSearch struct {
	results []domain.SearchResult
	err     error
}

func (m *mockSearch) Search(_ []domain.TranslationRecord, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockSearch) SmartSearch(_ []domain.TranslationRecord, _ string, _ domain.SearchOptions) []domain.SearchResult {
	return m.results
}

// mockResolver returns fixed text.
type mockResolver struct {
	text string
	err  error
}

func (m *mockResolver) ResolveText(_ string) (string, error) {
	return m.text, m.err
}

// mockHistory records lookups in memory.
type mockHistory struct {
	lookups []driven.Lookup
	failing bool
}

func (m *mockHistory) RecordLookup(_ context.Context, query, key, confidence string) error {
	if m.failing {
		return errors.New("history store down")
	}
	m.lookups = append(m.lookups, driven.Lookup{Query: query, Key: key, Confidence: confidence})
	return nil
}

func (m *mockHistory) Recent(_ context.Context, limit int) ([]driven.Lookup, error) {
	if m.failing {
		return nil, errors.New("history store down")
	}
	if len(m.lookups) > limit {
		return m.lookups[:limit], nil
	}
	return m.lookups, nil
}

func (m *mockHistory) TopKeys(_ context.Context, _ int) ([]driven.KeyCount, error) {
	return nil, nil
}
