package services

import (
	"sort"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

// DefaultMaxDepth bounds the flattener's recursion. Translation trees in
// the wild are a handful of levels deep; anything past this is treated as
// pathological nesting and silently truncated.
const DefaultMaxDepth = 10

// Flattener walks an arbitrary JSON-like object and emits flat
// TranslationRecord entries with dot-joined keys.
//
// Only non-empty string leaves are emitted. Arrays, nils, numbers,
// booleans and anything else that is not a plain object are skipped
// without recursing. Keys at each level are visited in lexicographic
// order: decoded JSON in Go carries no insertion order, and a
// deterministic order is required for stable rank indices.
type Flattener struct {
	// MaxDepth is the deepest nesting level that is still flattened.
	// Zero or negative means DefaultMaxDepth.
	MaxDepth int
}

// NewFlattener creates a flattener with the default depth bound.
func NewFlattener() *Flattener {
	return &Flattener{MaxDepth: DefaultMaxDepth}
}

// Flatten converts the raw dictionary into flat records.
// Empty output is not an error at this layer; callers decide whether "no
// records" is a failure.
func (f *Flattener) Flatten(raw map[string]any) []domain.TranslationRecord {
	maxDepth := f.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var records []domain.TranslationRecord
	flattenInto(&records, raw, "", 1, maxDepth)
	return records
}

// flattenInto appends the records found under node. The depth counter is
// passed by value, so sibling branches cannot affect each other's bound.
func flattenInto(records *[]domain.TranslationRecord, node map[string]any, prefix string, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}

	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k == "" {
			continue
		}
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}

		switch v := node[k].(type) {
		case string:
			// Empty values are dropped deliberately: they would only
			// produce noise candidates.
			if v == "" {
				continue
			}
			rec, err := domain.NewTranslationRecord(path, v)
			if err != nil {
				continue
			}
			*records = append(*records, rec)
		case map[string]any:
			flattenInto(records, v, path, depth+1, maxDepth)
		default:
			// Arrays, nil, numbers, booleans, and anything
			// non-serializable: skip, do not recurse.
		}
	}
}
