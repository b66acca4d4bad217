package greet

// Category maps a month-like number to a greeting word.
// Anything outside 1..5 falls back to "Hello".
func Category(month int) string {
	switch month {
	case 1:
		return "Greetings"
	case 2:
		return "Salutations"
	case 3:
		return "Hello"
	case 4:
		return "Hey there"
	case 5:
		return "Sup"
	default:
		return "Hello"
	}
}

// Categories lists every word Category can return, in month order.
func Categories() []string {
	return []string{"Greetings", "Salutations", "Hello", "Hey there", "Sup"}
}

// Intn draws a number in [0, n).
type Intn func(n int) int

// Random greets name with a category picked from a month drawn in [1, 5).
func Random(draw Intn, name string) string {
	month := draw(4) + 1
	return Category(month) + ", " + name
}
