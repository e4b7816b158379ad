package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/erazemk/track/internal/currency"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/i18n"
	"github.com/erazemk/track/internal/model"
	"github.com/erazemk/track/internal/query"
	"github.com/erazemk/track/internal/report"
)

type listCmd struct {
	common
	category string
	status   string
	sort     string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print items with their daily cost" }
func (*listCmd) Usage() string {
	return `track list [-d <db>] [-category <c>] [-status active|retired|sold] [-sort <key>]

  Prints the items matching the filters. Sort keys are <field>-<asc|desc>
  with field one of addTime, purchaseDate, price, dailyCost, usageDays.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.category, "category", query.All, "only items in this category")
	f.StringVar(&c.status, "status", query.All, "only items with this status")
	f.StringVar(&c.sort, "sort", query.DefaultOrder.String(), "sort key")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, ok := query.ParseOrder(c.sort)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown sort key %q\n", c.sort)
		return subcommands.ExitUsageError
	}
	if c.status != query.All && !model.Status(c.status).Valid() {
		fmt.Fprintf(os.Stderr, "unknown status %q\n", c.status)
		return subcommands.ExitUsageError
	}

	a, closeAll, err := c.open(ctx, slog.LevelError)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeAll()

	prefs, err := a.Preferences(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	lang := a.Language(ctx, "")
	today := a.Today()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\t%s\t%s\t%s\t%s\t%s\n",
		i18n.T(lang, "itemName"), i18n.T(lang, "category"), i18n.T(lang, "status"),
		i18n.T(lang, "price"), i18n.T(lang, "dailyCost"), i18n.T(lang, "usageDays"))
	for _, it := range a.List(query.Criteria{Category: c.category, Status: c.status}, order) {
		m := derive.For(it, today)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Name,
			i18n.CategoryName(lang, it.Category),
			i18n.StatusName(lang, it.Status),
			currency.Format(it.Price, prefs.Currency),
			currency.Format(m.DailyCost, prefs.Currency),
			derive.FormatUsageDuration(m.UsageDays, i18n.Units(lang)),
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type statsCmd struct {
	common
	lang string
	raw  bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "print collection statistics" }
func (*statsCmd) Usage() string {
	return `track stats [-d <db>] [-lang en|zh] [-raw]

  Prints spending, status counts, profit/loss and the category breakdown.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.lang, "lang", "", "report language (en or zh); defaults to the saved preference")
	f.BoolVar(&c.raw, "raw", false, "print Markdown instead of rendering it")
}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	prefs, err := a.Preferences(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}
	lang := c.lang
	if lang == "" {
		lang = a.Language(ctx, "")
	}

	var b strings.Builder
	err = report.Statistics(&b, a.Statistics(), report.Options{Lang: lang, Currency: prefs.Currency, Date: a.Today()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.raw {
		fmt.Print(b.String())
		return subcommands.ExitSuccess
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	slog.Warn("failed to render markdown", "error", err)
	fmt.Print(md)
}
