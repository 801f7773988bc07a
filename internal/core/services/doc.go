// Package services implements the driving port interfaces.
// Services contain the core business logic - dictionary location,
// flattening, tiered matching - and orchestrate calls to driven ports.
//
// Every extraction/search cycle is synchronous and operates on a snapshot
// of the page's global state plus a freshly-built record list; nothing in
// this package shares mutable state across cycles except the result cache,
// which exists precisely to arbitrate between the immediate and delayed
// extraction passes.
package services
