// Package match classifies a value of unknown kind by testing candidate kinds
// in a fixed priority order.
//
// The set of kinds is closed: Value is a sealed interface implemented only by
// Int, String, Bool and Time. A Dispatcher holds an ordered list of cases, each
// a typed guard plus an action; the first case whose kind and guard match wins.
package match

import (
	"time"
	"unicode/utf8"
)

// Kind names the concrete variant held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindString
	KindBool
	KindTime
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindString:  "string",
	KindBool:    "bool",
	KindTime:    "time",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// Value is one of Int, String, Bool or Time.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	Int    int
	String string
	Bool   bool
	Time   time.Time
)

func (Int) Kind() Kind    { return KindInt }
func (String) Kind() Kind { return KindString }
func (Bool) Kind() Kind   { return KindBool }
func (Time) Kind() Kind   { return KindTime }

func (Int) sealed()    {}
func (String) sealed() {}
func (Bool) sealed()   {}
func (Time) sealed()   {}

// Len returns the length of the string in characters (runes), not bytes.
func (s String) Len() int { return utf8.RuneCountInString(string(s)) }

// T returns the underlying time.Time.
func (t Time) T() time.Time { return time.Time(t) }

// Of wraps a plain Go value. It returns nil for unsupported types.
func Of(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case int:
		return Int(x)
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case time.Time:
		return Time(x)
	default:
		return nil
	}
}
