package demo

import (
	"github.com/sghaida/idioms/match"
)

// ShortDate is the month/day/year layout used when printing dates.
const ShortDate = "1/2/2006"

// describer is the if/else form: two kinds, then a catch-all.
func describer(p *printer) *match.Dispatcher {
	return match.NewDispatcher(
		match.When("time", nil, func(t match.Time) {
			p.printf("Day of month: %d\n", t.T().Day())
		}),
		match.When("string", nil, func(s match.String) {
			p.printf("String '%s' has a length of %d\n", string(s), s.Len())
		}),
	).Default(func(match.Value) {
		p.println("Unsupported data detected")
	})
}

// classifier is the switch form: kinds with guards, first match wins, no
// default.
func classifier(p *printer) *match.Dispatcher {
	return match.NewDispatcher(
		match.When("int", nil, func(i match.Int) {
			p.printf("Int detected: %d\n", int(i))
		}),
		match.When("time", nil, func(t match.Time) {
			p.println("DateTime detected: " + t.T().Format(ShortDate))
		}),
		match.When("string",
			func(s match.String) bool { return s.Len() >= 5 },
			func(s match.String) { p.println("String detected: " + string(s)) },
		),
		match.When("short string",
			func(s match.String) bool { return s.Len() < 5 },
			func(s match.String) { p.println("Short string detected: " + string(s)) },
		),
		match.When("false",
			func(b match.Bool) bool { return !bool(b) },
			func(match.Bool) { p.println("FALSE") },
		),
	)
}

// Patterns classifies values of different kinds by testing candidate kinds
// in priority order.
func Patterns(env Env) error {
	p := env.printer()
	now := match.Time(env.now())

	describe := describer(p)
	describe.Dispatch(now)
	describe.Dispatch(match.String("C#"))

	classify := classifier(p)
	for _, v := range []match.Value{
		now,
		match.Int(32),
		match.String("The Red Badge of Courage"),
		match.String("Zuul"),
		match.Bool(false),
	} {
		classify.Dispatch(v)
	}
	return p.err
}
