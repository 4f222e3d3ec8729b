package calc

import (
	"io"
	"strconv"
	"strings"
)

// Expr = num { op num }
// op = '+' | '-' | '*' | '/' | '%'

// Expr is a parsed expression, held in postfix order, that can be evaluated
// with a context.
type Expr struct {
	// rpn is the output queue of the conversion.
	rpn []token
}

// Parse scans an expression and converts it to postfix order so it can be
// evaluated with a context. The given options are applied in order.
//
// Parse only fails if the input contains no numbers or operators at all, or
// if reading src fails. Misplaced operators are reported by evaluation.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	toks, err := tokenize(lex(src, p.stop))
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: postfix(toks)}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// postfix reorders infix tokens into postfix order using the shunting yard
// algorithm.
func postfix(toks []token) []token {
	out := make([]token, 0, len(toks))
	var ops []token
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOp:
			o1 := binop(tok.op)
			// Pop everything that binds at least as tightly as o1.
			for len(ops) > 0 {
				o2 := ops[len(ops)-1]
				if o1.moreBinding(binop(o2.op)) {
					break
				}
				out = append(out, o2)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
	for i := len(ops) - 1; i >= 0; i-- {
		out = append(out, ops[i])
	}
	return out
}

// String formats the expression in postfix order, with tokens separated by
// single spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

// Postfix returns the tokens of the expression in postfix order.
func (e *Expr) Postfix() []string {
	r := make([]string, len(e.rpn))
	for i, tok := range e.rpn {
		r[i] = tok.text
	}
	return r
}

type opcode int8

const (
	opNone opcode = iota

	opAdd // a + b
	opSub // a - b
	opMul // a * b
	opDiv // a / b, b != 0
	opPct // a * b / 100
)

func (op opcode) String() string {
	if op <= opNone || int(op) > len(operstrs) {
		return "opcode(" + strconv.Itoa(int(op)) + ")"
	}
	return operstrs[op-1]
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the operation to perform when this operator is selected.
	op opcode
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for an opcode.
func binop(op opcode) operator {
	switch op {
	case opAdd, opSub:
		return operator{1, false, op}
	case opMul, opDiv, opPct:
		return operator{2, false, op}
	default:
		panic("calc: invalid opcode " + op.String())
	}
}
