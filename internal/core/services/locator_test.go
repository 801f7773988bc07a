package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

// TestLocator_DetailTopLevel tests the language-scoped container at the
// top of the state object
func TestLocator_DetailTopLevel(t *testing.T) {
	l := NewLocator("")
	state := map[string]any{
		"$scopedDict_en": map[string]any{"greeting": map[string]any{"hello": "Hello there"}},
	}

	res, err := l.Locate(domain.StrategyDetail, "en", state)
	require.NoError(t, err)
	assert.Equal(t, "scoped-dict", res.SourceLabel)
	assert.Contains(t, res.Raw, "greeting")
}

// TestLocator_DetailLanguageFallback tests that an empty detected language
// falls back to the primary locale
func TestLocator_DetailLanguageFallback(t *testing.T) {
	l := NewLocator("en")
	state := map[string]any{
		"$scopedDict_en": map[string]any{"k": "v"},
	}

	res, err := l.Locate(domain.StrategyDetail, "", state)
	require.NoError(t, err)
	assert.Equal(t, "scoped-dict", res.SourceLabel)
}

// TestLocator_DetailLanguageCase tests that the state key lookup lowercases
// the language tag found in the path
func TestLocator_DetailLanguageCase(t *testing.T) {
	l := NewLocator("")
	state := map[string]any{
		"$scopedDict_zh-tw": map[string]any{"k": "v"},
	}

	res, err := l.Locate(domain.StrategyDetail, "zh-TW", state)
	require.NoError(t, err)
	assert.Equal(t, "scoped-dict", res.SourceLabel)
}

// TestLocator_DetailPageProps tests the nested pageProps location
func TestLocator_DetailPageProps(t *testing.T) {
	l := NewLocator("")
	state := map[string]any{
		"pageProps": map[string]any{
			"$scopedDict_ja": map[string]any{"k": "v"},
		},
	}

	res, err := l.Locate(domain.StrategyDetail, "ja", state)
	require.NoError(t, err)
	assert.Equal(t, "page-props-scoped-dict", res.SourceLabel)
}

// TestLocator_GeneralTranslations tests the flat translations container
func TestLocator_GeneralTranslations(t *testing.T) {
	l := NewLocator("")
	state := map[string]any{
		"translations": map[string]any{"nav": map[string]any{"home": "Home"}},
	}

	res, err := l.Locate(domain.StrategyGeneral, "en", state)
	require.NoError(t, err)
	assert.Equal(t, "translation-state", res.SourceLabel)
}

// TestLocator_GeneralI18nMessages tests the nested i18n.messages location
func TestLocator_GeneralI18nMessages(t *testing.T) {
	l := NewLocator("")
	state := map[string]any{
		"i18n": map[string]any{
			"messages": map[string]any{"k": "v"},
		},
	}

	res, err := l.Locate(domain.StrategyGeneral, "en", state)
	require.NoError(t, err)
	assert.Equal(t, "i18n-messages", res.SourceLabel)
}

// TestLocator_NotFound tests the recoverable absence conditions
func TestLocator_NotFound(t *testing.T) {
	l := NewLocator("")

	tests := []struct {
		name     string
		strategy domain.Strategy
		language string
		state    map[string]any
	}{
		{"nil state", domain.StrategyDetail, "en", nil},
		{"empty state", domain.StrategyDetail, "en", map[string]any{}},
		{"wrong language scope", domain.StrategyDetail, "fr", map[string]any{
			"$scopedDict_en": map[string]any{"k": "v"},
		}},
		{"container is an array", domain.StrategyGeneral, "en", map[string]any{
			"translations": []any{"not", "a", "dict"},
		}},
		{"container is a string", domain.StrategyGeneral, "en", map[string]any{
			"translations": "oops",
		}},
		{"pageProps is scalar", domain.StrategyDetail, "en", map[string]any{
			"pageProps": 42,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := l.Locate(tt.strategy, tt.language, tt.state)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

// TestLocator_DoesNotCrossStrategies tests single responsibility: a detail
// lookup never falls through to general locations
func TestLocator_DoesNotCrossStrategies(t *testing.T) {
	l := NewLocator("")
	state := map[string]any{
		"translations": map[string]any{"k": "v"},
	}

	_, err := l.Locate(domain.StrategyDetail, "en", state)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestLocator_InvalidStrategy tests the contract-violation path
func TestLocator_InvalidStrategy(t *testing.T) {
	l := NewLocator("")

	_, err := l.Locate(domain.Strategy("hybrid"), "en", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestLocator_AddProbe tests that new site shapes append, not branch
func TestLocator_AddProbe(t *testing.T) {
	l := NewLocator("")
	l.AddProbe(Probe{
		Name:     "legacy-dict",
		Strategy: domain.StrategyGeneral,
		Extract: func(state map[string]any, _ string) (map[string]any, bool) {
			return asObject(state["legacyDict"])
		},
	})

	res, err := l.Locate(domain.StrategyGeneral, "en", map[string]any{
		"legacyDict": map[string]any{"k": "v"},
	})
	require.NoError(t, err)
	assert.Equal(t, "legacy-dict", res.SourceLabel)
}
