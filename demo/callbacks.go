package demo

import (
	"github.com/sghaida/idioms/greet"
	"github.com/sghaida/idioms/multicast"
)

// Callback stores a function in a variable of a named func type and calls it.
func Callback(env Env) error {
	p := env.printer()

	var g greet.Greeter = greet.Hello
	p.println(g("Bob"))
	return p.err
}

// MulticastCallback registers two callbacks behind one target, invokes it,
// then removes both.
func MulticastCallback(env Env) error {
	p := env.printer()

	var g multicast.Multicast[string]
	basic, err := g.Add(func(name string) { p.println(greet.Basic(name)) })
	if err != nil {
		return err
	}
	happy, err := g.Add(func(name string) { p.println(greet.Happy(name)) })
	if err != nil {
		return err
	}

	g.Invoke("Bob")

	g.Remove(basic)
	g.Remove(happy)
	g.Invoke("Bob") // nothing left to call
	return p.err
}

// GenericCallback calls a generic two-argument callback bound to strings.
func GenericCallback(env Env) error {
	p := env.printer()

	var g greet.Binary[string] = greet.Titled
	p.println(g("Susan", "Dr."))
	return p.err
}

// LocalFunctions greets a list of names through a closure declared inside the
// demo. The greeting word is picked at random; the ", name" suffix is not.
func LocalFunctions(env Env) error {
	p := env.printer()
	intn := env.intn()

	names := []string{"John", "Maria", "Ava", "Fransico"}

	generateGreeting := func(name string) string {
		return greet.Random(intn, name)
	}

	for _, name := range names {
		p.println(generateGreeting(name))
	}
	return p.err
}
