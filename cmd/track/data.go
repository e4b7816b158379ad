package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/i18n"
)

type importCmd struct {
	common
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "add the items of a CSV file" }
func (*importCmd) Usage() string {
	return `track import [-d <db>] <file.csv>

  Appends the valid rows of an exported CSV file (English or Chinese
  headers) to the collection. Invalid rows are reported and skipped.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import requires exactly one file")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	a, closeAll, err := c.open(ctx, slog.LevelError)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeAll()

	report, err := a.Import(ctx, file)
	if report != nil {
		for _, rowErr := range report.Errors {
			fmt.Fprintf(os.Stderr, "skipped %v\n", rowErr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("imported %d items, skipped %d rows\n", len(report.Imported), len(report.Errors))
	return subcommands.ExitSuccess
}

type exportCmd struct {
	common
	lang   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write all items to a CSV file" }
func (*exportCmd) Usage() string {
	return `track export [-d <db>] [-lang en|zh] [-o <file>]

  Writes the collection as CSV. The file defaults to track_YYYY-MM-DD.csv;
  use -o - for standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.lang, "lang", "", "header and status language (en or zh); defaults to the saved preference")
	f.StringVar(&c.output, "o", "", "output file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.lang != "" && !i18n.Supported(c.lang) {
		fmt.Fprintf(os.Stderr, "unsupported language %q\n", c.lang)
		return subcommands.ExitUsageError
	}

	a, closeAll, err := c.open(ctx, slog.LevelError)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeAll()

	lang := c.lang
	if lang == "" {
		lang = a.Language(ctx, "")
	}

	if c.output == "-" {
		if err := a.Export(os.Stdout, lang); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = app.ExportFilename(a.Today())
	}
	if len(a.Items()) == 0 {
		fmt.Fprintf(os.Stderr, "error: %v\n", app.ErrNoData)
		return subcommands.ExitFailure
	}

	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	err = a.Export(out, lang)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("exported %d items to %s\n", len(a.Items()), name)
	return subcommands.ExitSuccess
}
