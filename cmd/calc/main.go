package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		echo, keys   bool
		prec         int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting verb, e.g. %g (default plain decimal)")
	flag.IntVar(&prec, "p", calc.DefaultPrec, "precision of calculations in bits")
	flag.BoolVar(&echo, "echo", false, "print expressions in postfix order")
	flag.BoolVar(&keys, "keys", false, "treat input as calculator key presses")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	var ins []input
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	if keys {
		c := calc.NewCalculator(calc.Prec(uint(prec)))
		for _, in := range ins {
			if err := press(c, in); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	ctx := calc.NewContext(calc.Prec(uint(prec)))
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if err == io.EOF {
					break
				}
				log.Fatal(err)
			}
			in.UnreadRune()
			a, err := calc.Parse(in, calc.StopOn('\n'))
			if err != nil {
				if _, ok := err.(calc.InputError); !ok {
					log.Fatal(err)
				}
				fmt.Println(err)
				continue
			}
			if echo {
				fmt.Printf("%v : ", a)
			}
			r := ctx.Eval(a)
			if r == nil {
				fmt.Println(ctx.Err())
				continue
			}
			fmt.Println(format(verb, r))
		}
	}
}

// format formats a result with a user-given verb, or as calc.Format does if
// the verb is empty.
func format(verb string, r *big.Float) string {
	if verb == "" {
		return calc.Format(r)
	}
	return fmt.Sprintf(verb, r)
}

// press feeds each line of in to the calculator as key presses and prints
// the display after each line.
func press(c *calc.Calculator, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		for _, field := range strings.Fields(sc.Text()) {
			if err := command(c, field); err != nil {
				fmt.Println(err)
			}
		}
		fmt.Println(c.Display())
	}
	return sc.Err()
}

// command applies one key name or run of keys to the calculator.
func command(c *calc.Calculator, field string) error {
	switch strings.ToLower(field) {
	case "enter", "=":
		return c.Submit()
	case "backspace", "bs":
		c.Backspace()
	case "sqrt":
		return c.Sqrt()
	case "mc":
		c.MemoryClear()
	case "mr":
		c.MemoryRecall()
	case "m+":
		c.MemoryAdd()
	case "m-":
		c.MemorySubtract()
	default:
		for _, r := range field {
			if _, err := c.Key(string(r)); err != nil {
				return err
			}
		}
	}
	return nil
}

// input is a source of expressions.
type input interface {
	io.Reader
	io.RuneScanner
}

func infile(inname string, std bool) (input, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
