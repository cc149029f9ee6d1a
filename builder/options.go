// SPDX-License-Identifier: MIT
// Package: matchcover/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPartitionPrefix sets bipartite side labels (left/right).
// Empty values are allowed and interpreted as “use defaults” in config.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		// Store as provided; defaults are resolved in newBuilderConfig.
		c.leftPrefix, c.rightPrefix = left, right
	}
}
