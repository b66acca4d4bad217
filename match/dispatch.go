package match

// Case is one candidate in a Dispatcher: a kind test, an optional guard and
// the action to run on a match.
type Case struct {
	// Label is used for tracing and tests; it does not affect matching.
	Label  string
	kind   Kind
	test   func(Value) bool
	action func(Value)
}

// Kind returns the kind the case tests for.
func (c Case) Kind() Kind { return c.kind }

// When builds a Case matching values of variant V for which guard holds.
//
// A nil guard matches every V. A nil action is allowed: the case still wins
// the dispatch but does nothing.
func When[V Value](label string, guard func(V) bool, action func(V)) Case {
	kind := KindInvalid
	var zero V
	if k, ok := any(zero).(Value); ok {
		kind = k.Kind()
	}
	return Case{
		Label: label,
		kind:  kind,
		test: func(v Value) bool {
			x, ok := v.(V)
			if !ok {
				return false
			}
			return guard == nil || guard(x)
		},
		action: func(v Value) {
			if action != nil {
				action(v.(V))
			}
		},
	}
}

// Matches reports whether the case accepts v.
func (c Case) Matches(v Value) bool { return v != nil && c.test != nil && c.test(v) }

// Dispatcher runs the first matching case of an ordered list.
type Dispatcher struct {
	cases    []Case
	fallback func(Value)
}

// NewDispatcher returns a Dispatcher testing cases in the given order.
func NewDispatcher(cases ...Case) *Dispatcher {
	return &Dispatcher{cases: append([]Case(nil), cases...)}
}

// Default sets the action run when no case matches and returns d for chaining.
func (d *Dispatcher) Default(fn func(Value)) *Dispatcher {
	d.fallback = fn
	return d
}

// Cases returns a copy of the case list in priority order.
func (d *Dispatcher) Cases() []Case { return append([]Case(nil), d.cases...) }

// Dispatch runs the action of the first case matching v and returns its
// index. When nothing matches it runs the default action, if any, and
// returns -1 and false. A nil v never matches a case.
func (d *Dispatcher) Dispatch(v Value) (int, bool) {
	for i, c := range d.cases {
		if c.Matches(v) {
			c.action(v)
			return i, true
		}
	}
	if d.fallback != nil {
		d.fallback(v)
	}
	return -1, false
}

// Classify returns the label of the first matching case without running any
// action. ok is false when nothing matches.
func (d *Dispatcher) Classify(v Value) (label string, ok bool) {
	for _, c := range d.cases {
		if c.Matches(v) {
			return c.Label, true
		}
	}
	return "", false
}
