// Package greet holds the small greeting computations the demos are built on.
//
// Each helper shows one way of shaping a function in Go: a plain function
// type used as a callback, a generic two-argument callback, two results
// returned at once, a named result struct, and an options struct standing in
// for named/optional arguments.
package greet

import "github.com/sghaida/idioms/optional"

// DefaultTerminator ends a composed greeting when no terminator is supplied.
const DefaultTerminator = "!"

// Greeter builds a greeting for name.
type Greeter func(name string) string

// Binary computes a result from two values of the same type.
type Binary[T any] func(a, b T) T

// Hello is a Greeter: "Hello, Bob!".
func Hello(name string) string { return "Hello, " + name + "!" }

// Titled formats "Hello, {title} {name}!". It fits Binary[string].
func Titled(name, title string) string { return "Hello, " + title + " " + name + "!" }

// Basic is the plain form used by the multicast demo: "Hello, Bob".
func Basic(name string) string { return "Hello, " + name }

// Happy is the cheerful form used by the multicast demo: "Hey, Bob!".
func Happy(name string) string { return "Hey, " + name + "!" }

// Both returns the regular and the excited greeting for name.
func Both(name string) (regular, excited string) {
	return "Hello, " + name, "HEY! " + name
}

// Pair carries the two greetings returned by Both under names.
type Pair struct {
	Regular string
	Excited string
}

// For returns Both(name) as a Pair.
func For(name string) Pair {
	r, e := Both(name)
	return Pair{Regular: r, Excited: e}
}

// Options are the arguments of a composed greeting.
//
// Fields may be set in any order. Terminator is optional: when absent,
// DefaultTerminator is used; a supplied value, even "", is used as is.
type Options struct {
	Greeting   string
	Title      string
	Name       string
	Terminator optional.Option[string]
}

// String composes "{greeting}, {title} {name}{terminator}".
func (o Options) String() string {
	return o.Greeting + ", " + o.Title + " " + o.Name + o.Terminator.Or(DefaultTerminator)
}

// Compose is the positional form of Options.String.
//
// terminator is the trailing optional argument: leave it out to get
// DefaultTerminator. Only the first extra value is used.
func Compose(greeting, title, name string, terminator ...string) string {
	opts := Options{Greeting: greeting, Title: title, Name: name}
	if len(terminator) > 0 {
		opts.Terminator = optional.Some(terminator[0])
	}
	return opts.String()
}
