// Command kilominx-solve reads a Master Kilominx sticker grid, validates
// it, solves it and prints the instructions.
//
// Input is 12 lines of 21 space-separated color labels, one line per face
// in the order F U R D L BR BL BU BD B UL UR, each line listing the face's
// facelets in position order (corners, first wings, second wings, petals,
// super center). Reads the file named as the first argument, or stdin.
//
// Exit codes: 0 solved, 1 invalid state, 2 solver failure, 3 bad input or
// I/O error.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
	"github.com/itsAmeMario0o/master-kilominx-solver/narrate"
	"github.com/itsAmeMario0o/master-kilominx-solver/solve"
	"github.com/itsAmeMario0o/master-kilominx-solver/validate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kilominx-solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	timeout := fs.Duration("timeout", solve.DefaultStageTimeout,
		"wall-clock budget per solver stage")
	depth := fs.Int("depth", solve.DefaultMaxSearchDepth,
		"depth cap of the edge-pairing fallback search")
	outPath := fs.String("o", "", "write instructions to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 3
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, "kilominx-solve:", err)
			return 3
		}
		defer f.Close()
		in = f
	}

	cells, err := readCells(in)
	if err != nil {
		fmt.Fprintln(stderr, "kilominx-solve:", err)
		return 3
	}

	state, _, err := validate.Validate(cells)
	if err != nil {
		fmt.Fprintln(stderr, "kilominx-solve: invalid state:", err)
		return 1
	}

	sol, err := solve.Solve(state,
		solve.WithStageTimeout(*timeout),
		solve.WithMaxSearchDepth(*depth),
	)
	if err != nil {
		if errors.Is(err, solve.ErrInvalidState) {
			fmt.Fprintln(stderr, "kilominx-solve: invalid state:", err)
			return 1
		}
		fmt.Fprintln(stderr, "kilominx-solve:", err)
		return 2
	}

	dst := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(stderr, "kilominx-solve:", err)
			return 3
		}
		defer f.Close()
		dst = f
	}
	if err := narrate.Export(dst, sol); err != nil {
		fmt.Fprintln(stderr, "kilominx-solve:", err)
		return 3
	}

	return 0
}

// readCells parses the 12×21 label grid into one Cell per facelet.
func readCells(r io.Reader) ([]validate.Cell, error) {
	sc := bufio.NewScanner(r)

	cells := make([]validate.Cell, 0, kilominx.FaceletCount)
	face := kilominx.Face(0)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if face >= kilominx.NumFaces {
			return nil, fmt.Errorf("line %d: more than %d face rows", line, kilominx.NumFaces)
		}

		labels := strings.Fields(text)
		if len(labels) != kilominx.FaceletsPerFace {
			return nil, fmt.Errorf("line %d: face %v has %d labels, want %d",
				line, face, len(labels), kilominx.FaceletsPerFace)
		}
		for pos, label := range labels {
			color, ok := kilominx.ParseColor(label)
			if !ok {
				return nil, fmt.Errorf("line %d: unknown color %q", line, label)
			}
			cells = append(cells, validate.Cell{
				Facelet: kilominx.FaceletID(face, pos),
				Color:   color,
			})
		}
		face++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if face != kilominx.NumFaces {
		return nil, fmt.Errorf("got %d face rows, want %d", face, kilominx.NumFaces)
	}

	return cells, nil
}
