package demo

import (
	"github.com/sghaida/idioms/greet"
	"github.com/sghaida/idioms/ordered"
)

// AnonymousTypes builds a one-off record and prints it.
func AnonymousTypes(env Env) error {
	// a type scoped to this function is Go's answer to a throwaway record
	type person struct {
		FirstName string
		LastName  string
		Age       int
	}
	p := env.printer()

	who := person{FirstName: "Andy", LastName: "Dwyer", Age: 30}
	p.printf("Hello, %s %s, who is age %d!\n", who.FirstName, who.LastName, who.Age)
	return p.err
}

// CollectionInitializers builds a slice and two lookups from literals and
// walks them in order.
func CollectionInitializers(env Env) error {
	p := env.printer()

	names := []string{"John", "Susan", "Maria", "Sonya"}
	for _, name := range names {
		p.println("Hello " + name)
	}

	codeLookup := ordered.New(
		ordered.KV(400, "Bad Request"),
		ordered.KV(404, "Not Found"),
	)
	for code, text := range codeLookup.All() {
		p.printf("%d : %s\n", code, text)
	}

	// keyed assignment form
	codeLookup = new(ordered.Map[int, string]).
		Set(200, "OK").
		Set(201, "Created")
	for code, text := range codeLookup.All() {
		p.printf("%d : %s\n", code, text)
	}
	return p.err
}

// MultipleReturnValues reads two results by position.
func MultipleReturnValues(env Env) error {
	p := env.printer()

	regular, excited := greet.Both("John")
	p.println(regular)
	p.println(excited)
	return p.err
}

// NamedReturnValues reads two results through a named struct, then binds the
// same results to names chosen by the caller.
func NamedReturnValues(env Env) error {
	p := env.printer()

	greetings := greet.For("John")
	p.println(greetings.Regular)
	p.println(greetings.Excited)

	first, second := greet.Both("Mary")
	p.println(first)
	p.println(second)
	return p.err
}

// StringInterpolation formats values into a template, then prints the same
// template untouched.
func StringInterpolation(env Env) error {
	p := env.printer()

	greeting := "Hello"
	getTarget := func() string { return "World" }

	p.printf("%s %s!\n", greeting, getTarget())
	p.println("{greeting} {getTarget()}!")
	return p.err
}
