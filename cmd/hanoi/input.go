package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hanoi/puzzle"
)

// problem is one parsed puzzle instance, already shifted to the
// library's 0-based peg ids.
type problem struct {
	disks  int
	pegs   int
	start  puzzle.State
	target puzzle.State
}

// readProblem parses the whitespace-delimited, 1-based problem
// description: disk count, peg count, D start pegs, D target pegs.
func readProblem(r io.Reader) (*problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(name string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("reading %s: %w", name, err)
			}

			return 0, fmt.Errorf("unexpected end of input while reading %s", name)
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", name, err)
		}

		return n, nil
	}

	disks, err := next("disk count")
	if err != nil {
		return nil, err
	}
	pegs, err := next("peg count")
	if err != nil {
		return nil, err
	}
	if disks < 1 {
		return nil, fmt.Errorf("disk count must be at least 1, got %d", disks)
	}
	if pegs < 1 {
		return nil, fmt.Errorf("peg count must be at least 1, got %d", pegs)
	}

	readState := func(name string) (puzzle.State, error) {
		st := make(puzzle.State, disks)
		for i := range st {
			peg, nerr := next(fmt.Sprintf("%s peg of disk %d", name, i+1))
			if nerr != nil {
				return nil, nerr
			}
			st[i] = peg - 1 // input is 1-based
		}

		return st, nil
	}

	start, err := readState("start")
	if err != nil {
		return nil, err
	}
	target, err := readState("target")
	if err != nil {
		return nil, err
	}

	return &problem{disks: disks, pegs: pegs, start: start, target: target}, nil
}
