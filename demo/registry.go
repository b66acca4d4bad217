package demo

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

var (
	// ErrDemoPanic is returned if a demo panics while running.
	ErrDemoPanic = errors.New("demo: panic during Run")

	// ErrNilRun is returned when a demo is registered without a run function.
	ErrNilRun = errors.New("demo: nil run function")

	// ErrEmptyName is returned when a demo is registered without a name.
	ErrEmptyName = errors.New("demo: empty name")
)

// UnknownDemoError is returned when no demo is registered under Name.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: demo: unknown demo "x"
	return "demo: unknown demo " + strconv.Quote(e.Name)
}

// DuplicateDemoError is returned when a name is registered twice.
type DuplicateDemoError struct{ Name string }

// Error implements the error interface.
func (e DuplicateDemoError) Error() string {
	return "demo: duplicate demo " + strconv.Quote(e.Name)
}

// Info describes a demo.
type Info struct {
	Name    string `yaml:"name"`
	Feature string `yaml:"feature"`
	Summary string `yaml:"summary"`
	// Deterministic is false when output depends on the clock or on
	// randomness.
	Deterministic bool `yaml:"deterministic"`
}

// Demo is a runnable example.
type Demo struct {
	Info
	Run func(Env) error
}

// Registry keeps demos by name and remembers registration order.
//
// It is read-mostly: register everything up front, then look demos up and run
// them.
type Registry struct {
	items map[string]Demo
	order []string
	log   *zap.Logger
}

// NewRegistry returns an empty registry that logs nothing.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Demo{}, log: zap.NewNop()}
}

// WithLogger sets the logger used for run tracing and returns r for chaining.
// A nil logger turns logging off.
func (r *Registry) WithLogger(l *zap.Logger) *Registry {
	if l == nil {
		l = zap.NewNop()
	}
	r.log = l
	return r
}

// Register adds d. It fails on an empty or duplicate name or a nil Run.
func (r *Registry) Register(d Demo) error {
	if d.Run == nil {
		return fmt.Errorf("%w: %q", ErrNilRun, d.Name)
	}
	if d.Name == "" {
		return ErrEmptyName
	}
	if _, exists := r.items[d.Name]; exists {
		return DuplicateDemoError{Name: d.Name}
	}
	r.items[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Provide registers d and returns the registry for chaining.
// It panics if Register would fail; meant for static catalogs.
func (r *Registry) Provide(d Demo) *Registry {
	if err := r.Register(d); err != nil {
		panic(err)
	}
	return r
}

// Get returns the demo registered under name.
func (r *Registry) Get(name string) (Demo, bool) {
	d, ok := r.items[name]
	return d, ok
}

// MustGet returns the demo or panics with a helpful message.
func (r *Registry) MustGet(name string) Demo {
	d, ok := r.items[name]
	if !ok {
		panic(UnknownDemoError{Name: name})
	}
	return d
}

// Names returns demo names in registration order.
func (r *Registry) Names() []string { return append([]string(nil), r.order...) }

// Infos returns demo descriptions in registration order.
func (r *Registry) Infos() []Info {
	out := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.items[name].Info)
	}
	return out
}

// Run runs one demo and converts a panic inside it into an error wrapping
// ErrDemoPanic.
func (r *Registry) Run(name string, env Env) (err error) {
	d, ok := r.items[name]
	if !ok {
		return UnknownDemoError{Name: name}
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDemoPanic, name, rec)
		}
		if err != nil {
			r.log.Debug("demo failed", zap.String("demo", name), zap.Error(err))
			return
		}
		r.log.Debug("demo finished", zap.String("demo", name))
	}()

	r.log.Debug("demo started", zap.String("demo", name), zap.Bool("deterministic", d.Deterministic))
	return d.Run(env)
}

// RunMany runs the named demos in order, stopping at the first error. Every
// name is checked before anything runs. With more than one name, each
// demo's output is preceded by a "== name ==" banner.
func (r *Registry) RunMany(env Env, names ...string) error {
	for _, name := range names {
		if _, ok := r.items[name]; !ok {
			return UnknownDemoError{Name: name}
		}
	}
	banner := len(names) > 1
	for _, name := range names {
		if banner {
			if err := writeBanner(env, name); err != nil {
				return err
			}
		}
		if err := r.Run(name, env); err != nil {
			return err
		}
	}
	return nil
}

// RunAll runs every demo in registration order.
func (r *Registry) RunAll(env Env) error { return r.RunMany(env, r.order...) }

func writeBanner(env Env, name string) error {
	p := env.printer()
	p.println("== " + name + " ==")
	return p.err
}
