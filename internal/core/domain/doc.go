// Package domain defines the core business entities for KeyScout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TranslationRecord: A flattened i18n key/value pair
//   - SearchResult: A scored match for a query
//   - PageContext: Route classification for an inspected page
//   - Strategy: Which dictionary-location strategy applies
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
