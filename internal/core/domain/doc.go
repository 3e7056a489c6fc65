// Package domain defines the core business entities for surveyor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Section / Question: The survey catalogue
//   - FormItem: A single item injected into the remote form
//   - Recipient: One institution contact row
//   - Reminder: A scheduled follow-up email
//   - RunSummary: Outcomes of one pipeline run
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
