package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type token struct {
	text string
	kind tokenKind
	op   opcode
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal number, digits with an optional fraction.
	tokenNum
	// tokenOp is one of the runes in Operators.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are scanned as operators, in the order
// of their opcodes.
const Operators = "+-*/%"

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// rune is the number of runes consumed from src.
	rune int
	// stop contains the runes that end the input early.
	stop string
	eof  bool
	// end is the position of the rune or EOF that ended the input.
	end int
}

func lex(src io.RuneScanner, stop string) *lexer {
	return &lexer{src: src, stop: stop}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Runes which cannot begin a token
// are skipped. At the end of the input, or after a stop rune, the result is
// io.EOF, and it stays io.EOF on subsequent calls.
func (l *lexer) next() (token, error) {
	if l.eof {
		return token{}, io.EOF
	}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				l.end = l.rune + 1
			}
			return token{}, err
		}
		switch {
		case isdigit(r):
			tok := token{kind: tokenNum, pos: l.rune}
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return token{}, err
			}
			tok.text = l.buf.String()
			return tok, nil
		case strings.ContainsRune(l.stop, r):
			l.eof = true
			l.end = l.rune
			return token{}, io.EOF
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				return token{text: operstrs[k], kind: tokenOp, op: opcode(k + 1), pos: l.rune}, nil
			}
			// Not part of any token.
		}
	}
}

// scanNum scans digits(.digits)? into the buffer. A dot which is not followed
// by a digit is consumed but is not part of the number.
func (l *lexer) scanNum() error {
	l.buf.Reset()
	if err := l.scanDigits(); err != nil {
		return err
	}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if r != '.' {
		l.unreadRune()
		return nil
	}
	r, err = l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	l.unreadRune()
	if !isdigit(r) {
		return nil
	}
	l.buf.WriteByte('.')
	return l.scanDigits()
}

func (l *lexer) scanDigits() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isdigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// tokenize scans all tokens in the input. If there are none, the error is an
// *EmptyExpressionError.
func tokenize(l *lexer) ([]token, error) {
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: l.end}
	}
	return toks, nil
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}
