// Package domain defines the core business entities for Taxo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Module: A university module with its learning outcomes
//   - Skill: One classified tag extracted from a learning outcome
//   - ConsolidatedSkill: A skill merged across all modules sharing its name
//   - Taxonomy: The domain -> sub-category -> skill hierarchy
//   - Dataset: The persisted interchange document for the whole pipeline
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
