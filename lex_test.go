package calc

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func num(text string, pos int) token {
	return token{text: text, kind: tokenNum, pos: pos}
}

func op(text string, pos int) token {
	return token{text: text, kind: tokenOp, op: opcode(strings.Index(Operators, text) + 1), pos: pos}
}

// dump formats tokens for comparison.
func dump(toks []token) []string {
	var r []string
	for _, tok := range toks {
		r = append(r, tok.String())
	}
	return r
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		stop   string
		tokens []token
	}{
		// nothing
		{"empty", "", "", nil},
		{"spaces", " \t \r\n ", "", nil},
		{"letters", "abc", "", nil},
		{"dot", ".", "", nil},
		// numbers
		{"zero", "0", "", []token{num("0", 1)}},
		{"digits", "9876543210", "", []token{num("9876543210", 1)}},
		{"frac", "1.25", "", []token{num("1.25", 1)}},
		{"dot-end", "5.", "", []token{num("5", 1)}},
		{"dot-start", ".5", "", []token{num("5", 2)}},
		{"dots", "1.2.3", "", []token{num("1.2", 1), num("3", 5)}},
		{"double-dot", "1..2", "", []token{num("1", 1), num("2", 4)}},
		{"space", "1 0", "", []token{num("1", 1), num("0", 3)}},
		{"exponent", "1e5", "", []token{num("1", 1), num("5", 3)}},
		{"unicode", "π1", "", []token{num("1", 2)}},
		{"fullwidth", "１2", "", []token{num("2", 2)}},
		// operators
		{"ops", "1+2-3*4/5%6", "", []token{
			num("1", 1), op("+", 2), num("2", 3), op("-", 4), num("3", 5),
			op("*", 6), num("4", 7), op("/", 8), num("5", 9), op("%", 10), num("6", 11),
		}},
		{"repeated", "2++3", "", []token{num("2", 1), op("+", 2), op("+", 3), num("3", 4)}},
		{"lone", "-", "", []token{op("-", 1)}},
		{"dot-op", "5.+1", "", []token{num("5", 1), op("+", 3), num("1", 4)}},
		// skipped runes
		{"ignored", "2a+b3", "", []token{num("2", 1), op("+", 3), num("3", 5)}},
		{"brackets", "(1)", "", []token{num("1", 2)}},
		{"caret", "2^3", "", []token{num("2", 1), num("3", 3)}},
		// stops
		{"stop", "1+2\n3", "\n", []token{num("1", 1), op("+", 2), num("2", 3)}},
		{"stop-first", "\n3", "\n", nil},
		{"stop-dot", "5.\n3", "\n", []token{num("5", 1)}},
		{"stop-many", "1;2,3", ",;", []token{num("1", 1)}},
		{"no-stop", "1\n2", "", []token{num("1", 1), num("2", 3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := lex(strings.NewReader(c.src), c.stop)
			var got []token
			for {
				tok, err := scan.next()
				if err != nil {
					if !errors.Is(err, io.EOF) {
						t.Fatalf("scanning %q: unexpected error %v", c.src, err)
					}
					break
				}
				if tok.kind == tokenOp && tok.op.String() != tok.text {
					t.Errorf("scanning %q: token %v has opcode %v", c.src, tok, tok.op)
				}
				got = append(got, tok)
			}
			if d := pretty.Diff(dump(c.tokens), dump(got)); len(d) != 0 {
				t.Errorf("scanning %q: wrong tokens:\n%s", c.src, strings.Join(d, "\n"))
			}
			if _, err := scan.next(); !errors.Is(err, io.EOF) {
				t.Errorf("scanning %q: want EOF after end, got %v", c.src, err)
			}
		})
	}
}

func TestLexStopLeavesRest(t *testing.T) {
	src := strings.NewReader("1.\n2+3")
	scan := lex(src, "\n")
	for {
		if _, err := scan.next(); err != nil {
			break
		}
	}
	if src.Len() != 3 {
		t.Errorf("want 3 bytes left after stop, have %d", src.Len())
	}
}

func TestTokenizeEmpty(t *testing.T) {
	cases := []struct {
		name string
		src  string
		stop string
		col  int
	}{
		{"empty", "", "", 1},
		{"letters", "abc", "", 4},
		{"brackets", "()", "", 3},
		{"stop", "ab\ncd", "\n", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := tokenize(lex(strings.NewReader(c.src), c.stop))
			if toks != nil {
				t.Errorf("want no tokens, got %v", toks)
			}
			var ee *EmptyExpressionError
			if !errors.As(err, &ee) {
				t.Fatalf("want *EmptyExpressionError, got %#v", err)
			}
			if ee.Col != c.col {
				t.Errorf("wrong column: want %d, got %d", c.col, ee.Col)
			}
			if !errors.Is(err, ErrInvalidExpression) {
				t.Errorf("%v does not match ErrInvalidExpression", err)
			}
		})
	}
}

type errScanner struct {
	*strings.Reader
}

var errBroken = errors.New("broken")

func (s errScanner) ReadRune() (rune, int, error) {
	r, sz, err := s.Reader.ReadRune()
	if err == io.EOF {
		return 0, 0, errBroken
	}
	return r, sz, err
}

func TestTokenizeReadError(t *testing.T) {
	_, err := tokenize(lex(errScanner{strings.NewReader("1+2")}, ""))
	if !errors.Is(err, errBroken) {
		t.Errorf("want read error, got %v", err)
	}
}
