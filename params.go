// This file defines program parameters and routines for initializing them
// from the command line and an optional configuration file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// Parameters is a collection of all program parameters.
type Parameters struct {
	TTName   string   `yaml:"input"`    // Name of the input truth-table file
	Terms    []string `yaml:"terms"`    // Product terms over {0, 1, -} to use instead of a truth table
	Minterms []uint   `yaml:"minterms"` // Minterm numbers to use instead of a truth table
	Width    int      `yaml:"width"`    // Number of variables when using Minterms
	Format   string   `yaml:"format"`   // Output format: text, expr, yaml, or json
	Vars     []string `yaml:"vars"`     // Variable names for expression output
	Workers  int      `yaml:"workers"`  // Number of group pairs to combine concurrently
	Annotate bool     `yaml:"annotate"` // Annotate text output with covered minterms
	Chart    bool     `yaml:"chart"`    // Output the prime-implicant chart
	Check    bool     `yaml:"check"`    // Fail if any minterm is left uncovered
	Verbose  bool     `yaml:"verbose"`  // Log each generation
	Config   string   `yaml:"-"`        // Name of a YAML configuration file
}

// outputFormats lists the values accepted by --format.
var outputFormats = map[string]bool{
	"text": true,
	"expr": true,
	"yaml": true,
	"json": true,
}

// BindFlags defines a command-line flag for each parameter.
func BindFlags(fs *pflag.FlagSet, p *Parameters) {
	fs.StringSliceVar(&p.Terms, "terms", nil, "Comma-separated product terms such as 01-0 to use instead of a truth table")
	fs.UintSliceVar(&p.Minterms, "minterms", nil, "Comma-separated minterm numbers to use instead of a truth table")
	fs.IntVar(&p.Width, "width", 0, "Number of variables when using --minterms")
	fs.StringVar(&p.Format, "format", "text", "Output format (text, expr, yaml, or json)")
	fs.StringSliceVar(&p.Vars, "vars", nil, "Comma-separated variable names for expressions")
	fs.IntVar(&p.Workers, "workers", 1, "Number of popcount-group pairs to combine concurrently")
	fs.BoolVar(&p.Annotate, "annotate", false, "Annotate each prime implicant with the minterms it covers")
	fs.BoolVar(&p.Chart, "chart", false, "Output the prime-implicant chart")
	fs.BoolVar(&p.Check, "check", false, "Fail if any minterm is not covered by a prime implicant")
	fs.BoolVarP(&p.Verbose, "verbose", "v", false, "Log progress after each generation")
	fs.StringVar(&p.Config, "config", "", "YAML file of parameter defaults")
}

// LoadConfig reads p.Config, if set, into p.  Flags given explicitly on the
// command line take precedence over values from the file.
func LoadConfig(fs *pflag.FlagSet, p *Parameters) error {
	if p.Config == "" {
		return nil
	}

	// Remember the explicitly specified flags.
	type saved struct {
		str   string
		slice []string
	}
	explicit := make(map[*pflag.Flag]saved)
	fs.Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			explicit[f] = saved{slice: sv.GetSlice()}
		} else {
			explicit[f] = saved{str: f.Value.String()}
		}
	})

	// Overwrite the parameters with the file's contents.
	data, err := os.ReadFile(p.Config)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(data, p); err != nil {
		return fmt.Errorf("%s: %w", p.Config, err)
	}

	// Reapply the explicit flags.
	for f, v := range explicit {
		var err error
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = sv.Replace(v.slice)
		} else {
			err = f.Value.Set(v.str)
		}
		if err != nil {
			return fmt.Errorf("--%s: %w", f.Name, err)
		}
	}
	return nil
}

// ParseCommandLine finishes initializing the parameters after cobra has
// parsed the command line, then validates them.
func ParseCommandLine(cmd *cobra.Command, args []string, p *Parameters) error {
	if err := LoadConfig(cmd.Flags(), p); err != nil {
		return err
	}
	if len(args) >= 1 {
		p.TTName = args[0]
	}

	// Validate the arguments.
	switch {
	case !outputFormats[p.Format]:
		return fmt.Errorf("--format must be one of text, expr, yaml, or json, not %q", p.Format)
	case p.Workers < 0:
		return fmt.Errorf("--workers must be non-negative")
	case len(p.Terms) > 0 && len(p.Minterms) > 0:
		return fmt.Errorf("--terms cannot be combined with --minterms")
	case len(p.Terms) > 0 && p.TTName != "":
		return fmt.Errorf("--terms cannot be combined with an input file")
	case len(p.Minterms) > 0 && p.TTName != "":
		return fmt.Errorf("--minterms cannot be combined with an input file")
	case len(p.Minterms) > 0 && (p.Width < 1 || p.Width > maxCols):
		return fmt.Errorf("--width must be in [1, %d] when --minterms is specified", maxCols)
	case len(p.Minterms) == 0 && p.Width != 0:
		return fmt.Errorf("--width is meaningful only with --minterms")
	}
	return nil
}
