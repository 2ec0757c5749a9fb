// Program convert-numbers reads integers from a file and reports their binary
// and hexadecimal representations.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/creachadair/command"
	"github.com/creachadair/datatools/baseconv"
	"github.com/creachadair/datatools/dataset"
	"github.com/creachadair/datatools/internal/config"
	"github.com/creachadair/datatools/report"
	"github.com/creachadair/flax"
)

const defaultOutput = "ConversionResults.txt"

var flags struct {
	Output  string `flag:"output,Report file path (default ConversionResults.txt)"`
	Config  string `flag:"config,Optional YAML settings file"`
	Verbose bool   `flag:"v,Enable verbose logging"`
}

func main() {
	command.RunOrFail(rootCommand().NewEnv(nil), os.Args[1:])
}

// rootCommand returns the command tree for the program.
func rootCommand() *command.C {
	return &command.C{
		Name:  command.ProgramName(),
		Usage: "[options] <input-file>",
		Help: `Convert the integers in a file to binary and hexadecimal.

The input is a sequence of integers separated by whitespace. Entries that
are not integers, or that do not fit in 64 bits, are reported and skipped.
Negative values are converted by magnitude with a leading "-" sign.
The results are printed and written to a report file, by default
ConversionResults.txt.`,

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
	output, err := cfg.OutputPath(flags.Output, defaultOutput)
	if err != nil {
		return err
	}

	text, err := convertNumbers(input, output)
	if err != nil {
		return err
	}
	fmt.Print(text)
	fmt.Printf("Results saved to %s\n", output)
	vlog("Elapsed time: %v", time.Since(start).Round(time.Microsecond))
	return nil
}

// convertNumbers reads integers from the input file, converts each to binary
// and hexadecimal, and writes a report to the output file. It returns the
// text of the report.
func convertNumbers(input, output string) (string, error) {
	ds, err := dataset.ReadInts(input)
	if err != nil {
		return "", err
	}
	for _, r := range ds.Invalid {
		log.Printf("In %s: %v", input, r)
	}
	vlog("Read %d entries from %q (%d valid, %d invalid)", ds.Total, input, len(ds.Valid), len(ds.Invalid))
	if ds.IsEmpty() {
		log.Printf("Warning: no valid integers in %q", input)
	}

	return report.Save(output, report.Conversions{
		Items:   baseconv.Convert(ds.Valid),
		Invalid: len(ds.Invalid),
	})
}

func vlog(msg string, args ...any) {
	if flags.Verbose {
		log.Printf(msg, args...)
	}
}
