package calc

import (
	"strconv"
	"strings"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type eofopt struct {
	stop string
}

// parsectx holds general data for parsing.
type parsectx struct {
	// stop is a string containing the runes that end the expression.
	stop string
}

// StopOn tells the parser to treat a list of runes as ending the expression,
// e.g. StopOn('\n') to parse one expression per line. The stop rune is
// consumed from the input. Stop runes may not be digits, dots, or operators.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var b strings.Builder
	for _, r := range chars {
		switch {
		case isdigit(r), r == '.', strings.ContainsRune(Operators, r):
			panic("calc: cannot stop on " + strconv.QuoteRune(r))
		case strings.ContainsRune(b.String(), r):
			continue
		}
		b.WriteRune(r)
	}
	return &eofopt{stop: b.String()}
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.stop = o.stop
	return p
}
