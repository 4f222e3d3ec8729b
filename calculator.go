package calc

import (
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrorDisplay is the display text after an operation fails.
const ErrorDisplay = "Error"

// KeyChars contains the characters which Calculator.Key appends to the
// display, besides digits.
const KeyChars = Operators + "."

// Calculator holds the state of a calculator front end: the display text and
// a memory register. It is not safe to use a Calculator concurrently.
type Calculator struct {
	ctx     *Context
	display string
	mem     Memory
}

// NewCalculator creates a calculator with an empty display and a memory of 0.
// The options configure the context used for evaluation.
func NewCalculator(opts ...ContextOption) *Calculator {
	c := Calculator{ctx: NewContext(opts...)}
	c.mem.v.SetPrec(c.ctx.Prec())
	return &c
}

// Display returns the current display text.
func (c *Calculator) Display() string {
	return c.display
}

// Append adds text to the end of the display.
func (c *Calculator) Append(s string) {
	c.display += s
}

// Backspace deletes the last character of the display, if any.
func (c *Calculator) Backspace() {
	_, sz := utf8.DecodeLastRuneInString(c.display)
	c.display = c.display[:len(c.display)-sz]
}

// Clear empties the display. The memory register is unaffected.
func (c *Calculator) Clear() {
	c.display = ""
}

// Submit evaluates the display as an expression and replaces it with the
// result. On failure the display shows ErrorDisplay and the error is returned.
func (c *Calculator) Submit() error {
	e, err := ParseString(c.display)
	if err != nil {
		c.display = ErrorDisplay
		return err
	}
	r := c.ctx.Eval(e)
	if r == nil {
		c.display = ErrorDisplay
		return c.ctx.Err()
	}
	c.display = Format(r)
	return nil
}

// Sqrt replaces the display with the square root of the number it shows. If
// the display is not a single number or is negative, the display shows
// ErrorDisplay and the error matches ErrInvalidInput.
func (c *Calculator) Sqrt() error {
	x := c.number()
	if x == nil {
		c.display = ErrorDisplay
		return DomainError{Func: "sqrt"}
	}
	r, err := c.ctx.Sqrt(x)
	if err != nil {
		c.display = ErrorDisplay
		return err
	}
	c.display = Format(r)
	return nil
}

// MemoryClear resets the memory register to 0.
func (c *Calculator) MemoryClear() {
	c.mem.Clear()
}

// MemoryRecall appends the memory register's value to the display.
func (c *Calculator) MemoryRecall() {
	c.display += Format(c.mem.Recall())
}

// MemoryAdd adds the number on the display to the memory register. A display
// that is not a number counts as 0.
func (c *Calculator) MemoryAdd() {
	if x := c.number(); x != nil {
		c.mem.Add(x)
	}
}

// MemorySubtract subtracts the number on the display from the memory
// register. A display that is not a number counts as 0.
func (c *Calculator) MemorySubtract() {
	if x := c.number(); x != nil {
		c.mem.Subtract(x)
	}
}

// Memory returns the memory register's value.
func (c *Calculator) Memory() *big.Float {
	return c.mem.Recall()
}

// Key handles a key press by name: digits and KeyChars append to the display,
// "Enter" submits, "Backspace" deletes the last character, and "c" or "C"
// clears. Other keys are ignored and reported as not handled. The error is
// the result of Submit for "Enter" and nil otherwise.
func (c *Calculator) Key(k string) (handled bool, err error) {
	switch {
	case len(k) == 1 && (isdigit(rune(k[0])) || strings.Contains(KeyChars, k)):
		c.Append(k)
	case k == "Enter":
		return true, c.Submit()
	case k == "Backspace":
		c.Backspace()
	case k == "c", k == "C":
		c.Clear()
	default:
		return false, nil
	}
	return true, nil
}

// number parses the whole display as one decimal number, an optional sign
// followed by digits(.digits)?, the same numbers the scanner reads. The result
// is nil if the display is anything else.
func (c *Calculator) number() *big.Float {
	s := strings.TrimFunc(c.display, unicode.IsSpace)
	if !isnumber(s) {
		return nil
	}
	x, _, err := new(big.Float).SetPrec(c.ctx.Prec()).Parse(s, 10)
	if err != nil {
		return nil
	}
	return x
}

func isnumber(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	whole, frac, dot := s, "", false
	if k := strings.IndexByte(s, '.'); k >= 0 {
		whole, frac, dot = s[:k], s[k+1:], true
	}
	return alldigits(whole) && (!dot || alldigits(frac))
}

// alldigits reports whether s is a non-empty run of ASCII digits.
func alldigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isdigit(rune(s[i])) {
			return false
		}
	}
	return true
}

// Format formats a number for display as a plain decimal with the fewest
// digits that represent it exactly at its precision. The result never uses
// exponent notation, so it can be extended and evaluated as an expression.
func Format(x *big.Float) string {
	return x.Text('f', -1)
}
