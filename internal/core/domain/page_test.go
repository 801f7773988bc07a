package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPageContext_Valid tests construction with a well-formed pathname
func TestNewPageContext_Valid(t *testing.T) {
	c := NewRouteClassifier("")

	ctx, err := NewPageContext(c, "www.example-target.com", "/en/product/123")
	require.NoError(t, err)
	assert.Equal(t, "www.example-target.com", ctx.Domain)
	assert.Equal(t, "/en/product/123", ctx.Pathname)
	assert.True(t, ctx.IsTargetDomain)
	assert.True(t, ctx.IsDetailRoute)
	assert.Equal(t, "en", ctx.Language)
}

// TestNewPageContext_BadPathname tests that a pathname without a leading
// slash fails fast
func TestNewPageContext_BadPathname(t *testing.T) {
	c := NewRouteClassifier("")

	_, err := NewPageContext(c, "www.example-target.com", "en/product/123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewPageContext(c, "www.example-target.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestPageContext_Strategy tests strategy selection per route class
func TestPageContext_Strategy(t *testing.T) {
	c := NewRouteClassifier("")

	detail := c.Classify("www.example-target.com", "/en/product/123")
	s, err := detail.Strategy()
	require.NoError(t, err)
	assert.Equal(t, StrategyDetail, s)

	general := c.Classify("www.example-target.com", "/en/help")
	s, err = general.Strategy()
	require.NoError(t, err)
	assert.Equal(t, StrategyGeneral, s)
}

// TestPageContext_StrategyWrongDomain tests that strategy selection is an
// error condition off the target domain
func TestPageContext_StrategyWrongDomain(t *testing.T) {
	c := NewRouteClassifier("")

	ctx := c.Classify("example.com", "/en/product/123")
	_, err := ctx.Strategy()
	assert.ErrorIs(t, err, ErrWrongDomain)
}

// TestStrategy_Alternate tests the single fallback pairing
func TestStrategy_Alternate(t *testing.T) {
	assert.Equal(t, StrategyGeneral, StrategyDetail.Alternate())
	assert.Equal(t, StrategyDetail, StrategyGeneral.Alternate())
}

// TestStrategy_IsValid tests strategy validation
func TestStrategy_IsValid(t *testing.T) {
	assert.True(t, StrategyDetail.IsValid())
	assert.True(t, StrategyGeneral.IsValid())
	assert.False(t, Strategy("hybrid").IsValid())
	assert.False(t, Strategy("").IsValid())
}
