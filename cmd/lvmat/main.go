// Package main is a small driver for lvmat/matrix: it builds four literal
// matrices, prints them, then prints their sum and products.
//
// Usage:
//
//	lvmat [-quiet]
//
// -quiet drops the heading before each block.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvmat/matrix"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvmat: ")

	quiet := flag.Bool("quiet", false, "print matrices without headings")
	flag.Parse()

	if err := run(os.Stdout, *quiet); err != nil {
		log.Fatal(err)
	}
}

// sample grids: two 2×2 matrices, a 3×3 and a 3×1 column.
var (
	gridM1 = [][]float64{{2, 3}, {4, 5}}
	gridM2 = [][]float64{{-5, 2}, {5, -1}}
	gridM3 = [][]float64{{4, 3, 8}, {-1, 0, 3}, {5, -7, -4}}
	gridM4 = [][]float64{{4}, {3}, {5}}
)

// run builds the samples and writes every block to w.
func run(w io.Writer, quiet bool) error {
	m1, err := matrix.New(gridM1)
	if err != nil {
		return fmt.Errorf("m1: %w", err)
	}
	m2, err := matrix.New(gridM2)
	if err != nil {
		return fmt.Errorf("m2: %w", err)
	}
	m3, err := matrix.New(gridM3)
	if err != nil {
		return fmt.Errorf("m3: %w", err)
	}
	m4, err := matrix.New(gridM4)
	if err != nil {
		return fmt.Errorf("m4: %w", err)
	}

	sum, err := m1.Add(m2)
	if err != nil {
		return fmt.Errorf("m1 + m2: %w", err)
	}
	p12, err := m1.Multiply(m2)
	if err != nil {
		return fmt.Errorf("m1 * m2: %w", err)
	}
	p34, err := m3.Multiply(m4)
	if err != nil {
		return fmt.Errorf("m3 * m4: %w", err)
	}

	blocks := []struct {
		title string
		m     *matrix.Matrix
	}{
		{"m1", m1},
		{"m2", m2},
		{"m3", m3},
		{"m4", m4},
		{"m1 + m2", sum},
		{"m1 * m2", p12},
		{"m3 * m4", p34},
	}
	for i, b := range blocks {
		if i > 0 {
			if _, err = fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if !quiet {
			if _, err = fmt.Fprintf(w, "%s:\n", b.title); err != nil {
				return err
			}
		}
		if err = b.m.Fprint(w); err != nil {
			return err
		}
	}

	return nil
}
