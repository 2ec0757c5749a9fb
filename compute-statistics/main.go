// Program compute-statistics reads numbers from a file and reports their
// descriptive statistics: count, mean, median, mode, standard deviation and
// variance.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/creachadair/command"
	"github.com/creachadair/datatools/dataset"
	"github.com/creachadair/datatools/descstats"
	"github.com/creachadair/datatools/internal/config"
	"github.com/creachadair/datatools/report"
	"github.com/creachadair/flax"
)

// defaultOutput is the name of the report file if none is specified.
const defaultOutput = "StatisticsResults.txt"

var flags struct {
	Output   string `flag:"output,Report file path (default StatisticsResults.txt)"`
	Config   string `flag:"config,Optional YAML settings file"`
	Prec     int    `flag:"prec,default=-1,Digits after the decimal point (-1 for shortest exact)"`
	MaxModes int    `flag:"max-modes,Maximum number of modes to list (0 for all)"`
	Verbose  bool   `flag:"v,Enable verbose logging"`
}

func main() {
	command.RunOrFail(rootCommand().NewEnv(nil), os.Args[1:])
}

// rootCommand returns the command tree for the program.
func rootCommand() *command.C {
	return &command.C{
		Name:  command.ProgramName(),
		Usage: "[options] <input-file>",
		Help: `Compute descriptive statistics of the numbers in a file.

The input is a sequence of numbers separated by whitespace. Entries that
are not numbers are reported and skipped. The results are printed and
written to a report file, by default StatisticsResults.txt.

When several values occur equally often, all of them are listed as modes
in the order they first appear in the input.`,

		SetFlags: command.Flags(flax.MustBind, &flags),
		Run:      command.Adapt(runMain),

		Commands: []*command.C{
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}
}

func runMain(env *command.Env, input string) error {
	start := time.Now()
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	set := config.Explicit(&env.Command.Flags)
	if set.Has("prec") {
		cfg.Precision = flags.Prec
	}
	if set.Has("max-modes") {
		cfg.MaxModes = flags.MaxModes
	}
	if err := cfg.Validate(); err != nil {
		return env.Usagef("%v", err)
	}
	output, err := cfg.OutputPath(flags.Output, defaultOutput)
	if err != nil {
		return err
	}

	text, err := computeStatistics(input, output, cfg)
	if err != nil {
		return err
	}
	fmt.Print(text)
	fmt.Printf("Results saved to %s\n", output)
	vlog("Elapsed time: %v", time.Since(start).Round(time.Microsecond))
	return nil
}

// computeStatistics reads numbers from the input file, computes their
// statistics, and writes a report to the output file. It returns the text of
// the report.
func computeStatistics(input, output string, cfg *config.Settings) (string, error) {
	ds, err := dataset.ReadFloats(input)
	if err != nil {
		return "", err
	}
	for _, r := range ds.Invalid {
		log.Printf("In %s: %v", input, r)
	}
	vlog("Read %d entries from %q (%d valid, %d invalid)", ds.Total, input, len(ds.Valid), len(ds.Invalid))
	if ds.IsEmpty() {
		log.Printf("Warning: no valid numbers in %q; statistics are undefined", input)
	}

	return report.Save(output, report.Stats{
		Result:    descstats.Compute(ds.Valid),
		Invalid:   len(ds.Invalid),
		Precision: cfg.Precision,
		MaxModes:  cfg.MaxModes,
	})
}

func vlog(msg string, args ...any) {
	if flags.Verbose {
		log.Printf(msg, args...)
	}
}
