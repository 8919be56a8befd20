// This file formats prime implicants for output.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/lanl/find-primes/qmc"
)

// A primeEntry describes one prime implicant in structured output.
type primeEntry struct {
	Term     string `yaml:"term" json:"term"`
	Product  string `yaml:"product" json:"product"`
	Minterms []uint `yaml:"minterms" json:"minterms"`
	Consumed bool   `yaml:"consumed,omitempty" json:"consumed,omitempty"`
}

// A report is the structured form of a program run.
type report struct {
	Width      int          `yaml:"width" json:"width"`
	Minterms   []uint       `yaml:"minterms" json:"minterms"`
	Primes     []primeEntry `yaml:"primes" json:"primes"`
	Expression string       `yaml:"expression" json:"expression"`
}

// newReport gathers everything we know about the prime implicants.
func newReport(width int, vars []string, minterms, primes []qmc.Term) report {
	rep := report{
		Width:      width,
		Minterms:   make([]uint, len(minterms)),
		Primes:     make([]primeEntry, len(primes)),
		Expression: qmc.Expression(primes, vars),
	}
	for i, m := range minterms {
		rep.Minterms[i] = qmc.Minterms(m)[0]
	}
	for i, t := range primes {
		rep.Primes[i] = primeEntry{
			Term:     t.String(),
			Product:  qmc.Product(t, vars),
			Minterms: qmc.Minterms(t),
			Consumed: t.Consumed,
		}
	}
	return rep
}

// outputPrimes writes the prime implicants in the format requested by p.
func outputPrimes(w io.Writer, p *Parameters, width int, minterms, primes []qmc.Term) error {
	vars := p.Vars
	if vars == nil {
		vars = qmc.DefaultVars(width)
	}
	switch p.Format {
	case "expr":
		_, err := fmt.Fprintln(w, qmc.Expression(primes, vars))
		return err

	case "yaml":
		data, err := yaml.Marshal(newReport(width, vars, minterms, primes))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(width, vars, minterms, primes))

	default:
		// One term per line, optionally followed by a consumed marker and
		// the minterms it covers.
		for _, t := range primes {
			if !p.Annotate {
				if _, err := fmt.Fprintln(w, t); err != nil {
					return err
				}
				continue
			}
			usedMark := ' '
			if t.Consumed {
				usedMark = '*'
			}
			ms := make([]string, 0, 1<<uint(t.DontCares()))
			for _, m := range qmc.Minterms(t) {
				ms = append(ms, fmt.Sprint(m))
			}
			if _, err := fmt.Fprintf(w, "%s %c  %-*s  %s\n", t, usedMark, width, qmc.Product(t, vars), strings.Join(ms, ",")); err != nil {
				return err
			}
		}
		return nil
	}
}

// outputChart pretty-prints the prime-implicant chart, one row per minterm
// and one column per prime implicant.
func outputChart(w io.Writer, c *qmc.Chart) {
	fmt.Fprintln(w, "Prime-implicant chart:")
	digits := len(fmt.Sprintf("%d", len(c.Primes)))
	for j, t := range c.Primes {
		fmt.Fprintf(w, "    P%0*d = %s\n", digits, j+1, t)
	}
	counts := c.CoverCounts()
	for i, m := range c.Minterms {
		var sb strings.Builder
		for j := range c.Primes {
			mark := " ."
			if c.M.At(i, j) != 0 {
				mark = " X"
			}
			sb.WriteString(mark)
		}

		// Mark minterms that nothing covers.
		badMark := ' '
		if counts[i] == 0 {
			badMark = '!'
		}
		fmt.Fprintf(w, "    %s |%s | %d %c\n", m, sb.String(), counts[i], badMark)
	}
}
