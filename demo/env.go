package demo

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/sghaida/idioms/greet"
)

// Env is everything a demo touches outside its own values: where it writes,
// what time it is and where randomness comes from.
//
// Zero fields fall back to stdout, time.Now and an unseeded source.
type Env struct {
	Out  io.Writer
	Now  func() time.Time
	Intn greet.Intn
}

// StdEnv writes to stdout and uses the real clock and a random seed.
func StdEnv() Env { return Env{Out: os.Stdout, Now: time.Now, Intn: rand.IntN} }

// SeededEnv writes to out and draws random numbers from a source seeded with
// seed, so demos that pick at random become reproducible. A zero seed means
// "seed from the clock".
func SeededEnv(out io.Writer, seed int64) Env {
	env := Env{Out: out, Now: time.Now, Intn: rand.IntN}
	if seed != 0 {
		r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		env.Intn = r.IntN
	}
	return env
}

func (e Env) printer() *printer {
	w := e.Out
	if w == nil {
		w = os.Stdout
	}
	return &printer{w: w}
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) intn() greet.Intn {
	if e.Intn == nil {
		return rand.IntN
	}
	return e.Intn
}

// printer remembers the first write error so demos can print freely and
// report once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
