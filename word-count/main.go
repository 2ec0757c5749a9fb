// Program word-count reads text from a file and reports how often each
// distinct word occurs.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/creachadair/command"
	"github.com/creachadair/datatools/dataset"
	"github.com/creachadair/datatools/internal/config"
	"github.com/creachadair/datatools/report"
	"github.com/creachadair/datatools/wordfreq"
	"github.com/creachadair/flax"
)

const defaultOutput = "WordCountResults.txt"

var flags struct {
	Output  string `flag:"output,Report file path (default WordCountResults.txt)"`
	Config  string `flag:"config,Optional YAML settings file"`
	Skip    string `flag:"skip,Comma-separated words to exclude from the count"`
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
		Help: `Count the occurrences of each distinct word in a file.

Words are separated by whitespace. Each word is converted to lower case and
stripped of leading and trailing punctuation, so "The" and "the," count as
the same word. Tokens with nothing left after this are discarded.

Words are listed from most to least frequent. Words that occur equally
often are listed in the order they first appear in the input. The results
are printed and written to a report file, by default WordCountResults.txt.`,

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
	skip := wordfreq.SkipSet(cfg.SkipWords)
	if config.Explicit(&env.Command.Flags).Has("skip") {
		skip = wordfreq.ParseSkip(flags.Skip)
	}
	output, err := cfg.OutputPath(flags.Output, defaultOutput)
	if err != nil {
		return err
	}

	norm := wordfreq.Normalizer{Skip: skip}
	text, err := countWords(input, output, norm)
	if err != nil {
		return err
	}
	fmt.Print(text)
	fmt.Printf("Results saved to %s\n", output)
	vlog("Elapsed time: %v", time.Since(start).Round(time.Microsecond))
	return nil
}

// countWords reads words from the input file, counts them, and writes a
// report to the output file. It returns the text of the report.
func countWords(input, output string, norm wordfreq.Normalizer) (string, error) {
	ds, err := dataset.ReadWords(input, norm)
	if err != nil {
		return "", err
	}
	vlog("Read %d tokens from %q (%d words, %d discarded)", ds.Total, input, len(ds.Valid), ds.Discarded)
	if ds.IsEmpty() {
		log.Printf("Warning: no words found in %q", input)
	}

	return report.Save(output, report.Words{
		Entries:   wordfreq.Count(ds.Valid),
		Discarded: ds.Discarded,
	})
}

func vlog(msg string, args ...any) {
	if flags.Verbose {
		log.Printf(msg, args...)
	}
}
