/*
Find the prime implicants of a Boolean function given its truth table.
*/

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/lanl/find-primes/qmc"
)

// notify is used to output error messages, tagged with the program name.
var notify = newLogger(logrus.ErrorLevel).WithField("prog", filepath.Base(os.Args[0]))

// info is used to output status messages.
var info = newLogger(logrus.InfoLevel)

// newLogger returns a logger that writes to standard error.
func newLogger(lvl logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// readTerms returns the minterms of the function described by p and the
// number of variables.
func readTerms(p *Parameters, stdin io.Reader) ([]qmc.Term, int, error) {
	if len(p.Terms) > 0 {
		return expandTerms(p.Terms)
	}
	if len(p.Minterms) > 0 {
		ts, err := qmc.FromMinterms(p.Width, p.Minterms)
		return qmc.Unique(ts), p.Width, err
	}
	tt, err := ReadTruthTableFile(p.TTName, stdin)
	if err != nil {
		return nil, 0, err
	}
	if tt.NCols == 0 {
		return nil, 0, nil
	}
	ts, err := qmc.FromMinterms(tt.NCols, tt.ValidRows())
	return ts, tt.NCols, err
}

// expandTerms parses product terms such as "01-0" and returns the minterms
// they cover, in ascending order, along with the number of variables.
func expandTerms(ss []string) ([]qmc.Term, int, error) {
	seen := make(map[uint]bool)
	var ms []uint
	width := -1
	for _, s := range ss {
		t, err := qmc.ParseTerm(s)
		if err != nil {
			return nil, 0, fmt.Errorf("--terms: %w", err)
		}
		switch {
		case width == -1 && (t.Width() < 1 || t.Width() > maxCols):
			return nil, 0, fmt.Errorf("--terms: %q must have between 1 and %d columns", s, maxCols)
		case width == -1:
			width = t.Width()
		case t.Width() != width:
			return nil, 0, fmt.Errorf("--terms: %q: %w: expected %d columns but saw %d",
				s, qmc.ErrWidth, width, t.Width())
		}
		for _, m := range qmc.Minterms(t) {
			if !seen[m] {
				seen[m] = true
				ms = append(ms, m)
			}
		}
	}
	slices.Sort(ms)
	ts, err := qmc.FromMinterms(width, ms)
	return ts, width, err
}

// run finds and outputs the prime implicants of the function described by p.
func run(cmd *cobra.Command, p *Parameters) error {
	if p.Verbose {
		info.SetLevel(logrus.DebugLevel)
	}

	// Read the input.
	minterms, width, err := readTerms(p, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(minterms) == 0 {
		info.Warn("The function has no true rows")
	}
	if p.Vars != nil && len(p.Vars) != width {
		return fmt.Errorf("--vars names %d variables, but the function has %d", len(p.Vars), width)
	}

	// Find all prime implicants.
	s := qmc.Solver{
		Workers: p.Workers,
		Trace: func(g qmc.Generation) {
			info.WithFields(logrus.Fields{
				"round":  g.Round,
				"groups": g.Groups,
				"inputs": g.Inputs,
				"merged": g.Merged,
				"primes": g.Primes,
			}).Debug("Completed generation")
		},
	}
	primes := s.PrimeImplicants(minterms)
	info.WithFields(logrus.Fields{
		"minterms": len(minterms),
		"width":    width,
	}).Infof("Found %d prime implicant(s)", len(primes))

	// Output the results.
	out := cmd.OutOrStdout()
	if err := outputPrimes(out, p, width, minterms, primes); err != nil {
		return err
	}
	chart := qmc.NewChart(primes, minterms)
	if p.Chart {
		outputChart(out, chart)
	}
	if p.Check {
		if un := chart.Uncovered(); len(un) > 0 {
			return fmt.Errorf("%d minterm(s) are not covered by any prime implicant", len(un))
		}
	}
	return nil
}

// newRootCmd returns the find-primes command.
func newRootCmd() *cobra.Command {
	var p Parameters
	cmd := &cobra.Command{
		Use:   "find-primes [<options>] [<input.tt>]",
		Short: "Find the prime implicants of a Boolean function",
		Long: `find-primes reads a truth table listing the rows for which a Boolean
function is true and applies the Quine-McCluskey method to find all of the
function's prime implicants.  Each input line lists the columns of one row as
0/1, F/T, or FALSE/TRUE; "-", "*", and "?" stand for both values.  Text from
"#" to the end of a line is ignored.  With no file argument the truth table is
read from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ParseCommandLine(cmd, args, &p); err != nil {
				return err
			}
			return run(cmd, &p)
		},
	}
	BindFlags(cmd.Flags(), &p)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		notify.Fatal(err)
	}
}
