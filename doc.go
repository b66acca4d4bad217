// Package idioms is a collection of small, independent demos, each showing one
// language feature the way it is written in Go.
//
// The demos cover:
//
//   - ad hoc records: a struct type scoped to one function
//   - collection literals: slices and an insertion-ordered map (ordered)
//   - callbacks: named func types, generic func types, multicast targets (multicast)
//   - closures used as local functions
//   - multiple results, read by position or through a named struct (greet)
//   - named/optional arguments as an options struct with defaults (greet)
//   - missing values: fallbacks and lookup chains that come up empty (optional)
//   - classification of a closed set of kinds, first match wins (match)
//   - formatting values into templates
//
// Package layout:
//   - optional, multicast, match, ordered, greet: the building blocks
//   - demo: one func(Env) error per feature, plus a registry to run them by name
//   - config: environment settings for the CLI
//   - cmd/idioms: CLI to list, describe and run demos
//   - examples/*: one runnable main per demo, no arguments
package idioms
