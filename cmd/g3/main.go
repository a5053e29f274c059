// Command g3 is an RPN calculator over the elements of the geometric
// algebra of 3D space.
//
// Each line is a sequence of words evaluated left to right against a
// stack. Numbers push scalars; vec, biv, tri, spin, imsp, cplx, dplx and
// mv push an element read from the numbers that follow them. Arguments
// given on the command line are evaluated once without a prompt.
//
//	g3: e12 vec 1 2 3 *
//	 0 ImSpin           +2.000000      -1.000000      +0.000000      +3.000000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"dasa.cc/ga/g3"
	"github.com/chzyer/readline"
)

var (
	flagEnote   = flag.Bool("enote", false, "Print components in exponent notation.")
	flagHistory = flag.String("history", "", "History file; a temporary file if empty.")
	flagPrompt  = flag.String("prompt", "g3: ", "Interactive prompt.")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	m := &machine{}
	if *flagEnote {
		m.format = g3.Enote
	}

	if flag.NArg() > 0 {
		if err := m.eval(strings.Join(flag.Args(), " ")); err != nil {
			log.Fatal(err)
		}
		if err := m.print(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	history := *flagHistory
	if history == "" {
		tmp, err := os.CreateTemp("", "g3")
		if err != nil {
			log.Fatal(err)
		}
		tmp.Close()
		defer os.Remove(tmp.Name())
		history = tmp.Name()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            *flagPrompt,
		HistoryFile:       history,
		AutoComplete:      dictionary,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	log.SetOutput(rl.Stderr())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			log.Println(err)
			break
		}

		if err := m.eval(line); err != nil {
			log.Println(err)
		}
		if err := m.print(rl.Stdout()); err != nil {
			log.Println(err)
		}
		fmt.Fprintln(rl.Stdout())
	}
}
