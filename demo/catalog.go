// Package demo holds one runnable demo per language feature and a registry to
// find and run them by name.
//
// Every demo is a func(Env) error: it builds a few values, applies one
// feature and writes lines to Env.Out. Demos share no state.
package demo

// Demo names, in catalog order.
const (
	NameAnonymousTypes         = "anonymous-types"
	NameCollectionInitializers = "collection-initializers"
	NameDelegates01            = "delegates01"
	NameDelegates02            = "delegates02"
	NameDelegates03            = "delegates03"
	NameLocalFunctions         = "local-functions"
	NameMultipleReturnValues01 = "multiple-return-values01"
	NameMultipleReturnValues02 = "multiple-return-values02"
	NameNamedOptionalArguments = "named-optional-arguments"
	NameNullOperators          = "null-operators"
	NamePatterns               = "patterns"
	NameStringInterpolation    = "string-interpolation"
)

// Catalog returns a registry holding every demo.
func Catalog() *Registry {
	return NewRegistry().
		Provide(Demo{
			Info: Info{Name: NameAnonymousTypes, Feature: "ad hoc records",
				Summary: "a struct type scoped to one function", Deterministic: true},
			Run: AnonymousTypes,
		}).
		Provide(Demo{
			Info: Info{Name: NameCollectionInitializers, Feature: "collection literals",
				Summary: "slice and insertion-ordered map built from literals", Deterministic: true},
			Run: CollectionInitializers,
		}).
		Provide(Demo{
			Info: Info{Name: NameDelegates01, Feature: "func types",
				Summary: "a named func type holding a greeting callback", Deterministic: true},
			Run: Callback,
		}).
		Provide(Demo{
			Info: Info{Name: NameDelegates02, Feature: "multicast callbacks",
				Summary: "several callbacks behind one target, added and removed by handle", Deterministic: true},
			Run: MulticastCallback,
		}).
		Provide(Demo{
			Info: Info{Name: NameDelegates03, Feature: "generic func types",
				Summary: "a generic two-argument callback bound to strings", Deterministic: true},
			Run: GenericCallback,
		}).
		Provide(Demo{
			Info: Info{Name: NameLocalFunctions, Feature: "closures",
				Summary: "a function declared inside another, picking a random greeting"},
			Run: LocalFunctions,
		}).
		Provide(Demo{
			Info: Info{Name: NameMultipleReturnValues01, Feature: "multiple results",
				Summary: "two results read by position", Deterministic: true},
			Run: MultipleReturnValues,
		}).
		Provide(Demo{
			Info: Info{Name: NameMultipleReturnValues02, Feature: "named results",
				Summary: "two results read through a named struct and caller-chosen names", Deterministic: true},
			Run: NamedReturnValues,
		}).
		Provide(Demo{
			Info: Info{Name: NameNamedOptionalArguments, Feature: "options struct",
				Summary: "named fields in any order, a defaulted optional field and a positional form", Deterministic: true},
			Run: NamedOptionalArguments,
		}).
		Provide(Demo{
			Info: Info{Name: NameNullOperators, Feature: "optional values",
				Summary: "fallback for a missing value and a lookup chain that comes up empty", Deterministic: true},
			Run: NullOperators,
		}).
		Provide(Demo{
			Info: Info{Name: NamePatterns, Feature: "ordered dispatch",
				Summary: "classify values of a closed set of kinds, first match wins"},
			Run: Patterns,
		}).
		Provide(Demo{
			Info: Info{Name: NameStringInterpolation, Feature: "formatting",
				Summary: "values formatted into a template next to the raw template", Deterministic: true},
			Run: StringInterpolation,
		})
}
