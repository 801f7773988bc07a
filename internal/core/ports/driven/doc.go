// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SnapshotSource: Provides page-state snapshots to extract from
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Lookup history/statistics persistence (history disabled)
//   - Clipboard: System clipboard writes (copy disabled)
//   - FallbackScorer: Edit-distance scoring for the opt-in fuzzy mode
package driven
