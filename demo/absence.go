package demo

import (
	"github.com/sghaida/idioms/greet"
	"github.com/sghaida/idioms/optional"
)

// Book is the record used by the absence demo. Author and Pages may be
// missing.
type Book struct {
	Title  string
	Author optional.Option[string]
	Pages  optional.Option[int]
}

// Books returns the demo's shelf. The last book has no author.
func Books() []Book {
	return []Book{
		{Title: "Don Quixote", Author: optional.Some("Miguel De Cervantes"), Pages: optional.Some(992)},
		{Title: "The Red Badge of Courage", Author: optional.Some("Stephen Crane"), Pages: optional.Some(112)},
		{Title: "The Secret Garden"},
	}
}

// AuthorAt follows books[i].Author, coming up empty when the index is out of
// range or the book has no author.
func AuthorAt(books []Book, i int) optional.Option[string] {
	return optional.Then(optional.At(books, i), func(b Book) optional.Option[string] {
		return b.Author
	})
}

// NullOperators falls back to a default for a missing value, then follows a
// chain that breaks part way and prints the empty result.
func NullOperators(env Env) error {
	p := env.printer()

	var greeting optional.Option[string]
	newGreeting := greeting.Or("Hello")
	p.println(newGreeting + " World!")

	books := Books()
	author := AuthorAt(books, 2)
	p.println(author.String()) // empty line
	return p.err
}

// NamedOptionalArguments composes greetings with named fields, with a
// defaulted trailing field, and positionally.
func NamedOptionalArguments(env Env) error {
	p := env.printer()

	greeting := greet.Options{
		Title:      "Dr.",
		Name:       "Sonya",
		Terminator: optional.Some("?"),
		Greeting:   "Hello",
	}.String()
	p.println(greeting)

	// Terminator left out: DefaultTerminator applies
	greeting = greet.Options{
		Title:    "the Honorable",
		Name:     "Andy Dwyer",
		Greeting: "Salutations",
	}.String()
	p.println(greeting)

	greeting = greet.Compose("Greetings", "Agent", "Smith", "")
	p.println(greeting)
	return p.err
}
