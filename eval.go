package calc

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

// DefaultPrec is the default precision of calculations. It matches float64,
// so results are the same as ordinary floating-point arithmetic.
const DefaultPrec = 53

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits. A precision of 0 selects
// DefaultPrec.
func Prec(prec uint) ContextOption {
	if prec == 0 {
		prec = DefaultPrec
	}
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is DefaultPrec.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: DefaultPrec}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a division by zero, then the result is nil and ctx.Err returns the
// error. The context remains usable either way.
func (ctx *Context) Eval(e *Expr) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		// The last result belongs to the caller now.
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("calc: Eval during Eval")
	}
	if len(ctx.nums) > maxnums {
		ctx.nums = make(map[string]*big.Float)
	}
	err := e.eval(ctx)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("calc: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("calc: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items")
	}
}

// Err returns the error from the last expression evaluated with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	// Loop backward so we apply the last precision.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	// Copy numbers only at the same precision. Rounding cached values again
	// could differ from parsing the text at the new precision.
	if n.prec == ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = v
		}
	}
	for _, opt := range opts {
		switch opt.(type) {
		case nil, precopt: // do nothing
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future pushes.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// maxnums is the number of cached numbers above which Eval drops the cache.
const maxnums = 256

// num gets a possibly cached number from its text. Cached values are never
// modified, so clones at the same precision may share them.
func (ctx *Context) num(s string) *big.Float {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil {
		panic("calc: invalid number: " + s + " (" + err.Error() + ")")
	}
	ctx.nums[s] = r
	return r
}

var hundred = big.NewFloat(100)

// eval evaluates the postfix queue, leaving the result as the only value on
// the context's stack.
func (e *Expr) eval(ctx *Context) error {
	var last token
	for _, tok := range e.rpn {
		switch tok.kind {
		case tokenNum:
			ctx.push().Set(ctx.num(tok.text))
			last = tok
		case tokenOp:
			if len(ctx.stack) < 2 {
				return &OperandError{Col: tok.pos, Operator: tok.text, Have: len(ctx.stack)}
			}
			r := ctx.pop()
			l := ctx.top()
			switch tok.op {
			case opAdd:
				l.Add(l, r)
			case opSub:
				l.Sub(l, r)
			case opMul:
				l.Mul(l, r)
			case opDiv:
				if r.Sign() == 0 {
					return DomainError{X: new(big.Float).Copy(r), Func: "/", Col: tok.pos}
				}
				l.Quo(l, r)
			case opPct:
				l.Mul(l, r)
				l.Quo(l, hundred)
			default:
				panic("calc: invalid opcode " + tok.op.String())
			}
		default:
			panic("calc: invalid token " + tok.String())
		}
	}
	switch len(ctx.stack) {
	case 0:
		return &EmptyExpressionError{Col: 1}
	case 1:
		return nil
	default:
		return &ExtraOperandError{Col: last.pos, Count: len(ctx.stack)}
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ContextOption) (*big.Float, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (*big.Float, error) {
	return Eval(strings.NewReader(src), opts...)
}

// Evaluate evaluates an expression as ordinary floating-point arithmetic.
func Evaluate(expression string) (float64, error) {
	r, err := EvalString(expression)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

// DomainError is an error returned when an operation is applied to an
// argument outside its domain: a zero divisor, or the square root of a
// negative number. It implements InputError.
type DomainError struct {
	// X is the out-of-domain argument. It is nil if the argument was not a
	// number at all.
	X *big.Float
	// Func is a name identifying the operation, "/" or "sqrt".
	Func string
	// Col is the position of the operator in the expression, or 0 if the
	// operation was not part of an expression.
	Col int
}

func (err DomainError) Error() string {
	x := "NaN"
	if err.X != nil {
		x = err.X.String()
	}
	r := x + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Col > 0 {
		return errpos(err.Col, r)
	}
	return r
}

func (err DomainError) Pos() int {
	return err.Col
}

// Is reports ErrDivisionByZero for division and ErrInvalidInput otherwise.
func (err DomainError) Is(target error) bool {
	if err.Func == "/" {
		return target == ErrDivisionByZero
	}
	return target == ErrInvalidInput
}
