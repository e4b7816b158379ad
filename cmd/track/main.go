// Command track keeps a record of personal possessions: what they cost,
// how long they have been in use and what they cost per day.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/db"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&serveCmd{}, "")

	subcommands.Register(&listCmd{}, "items")
	subcommands.Register(&statsCmd{}, "items")

	subcommands.Register(&importCmd{}, "data")
	subcommands.Register(&exportCmd{}, "data")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// common holds the flags shared by every subcommand.
type common struct {
	dbPath  string
	logPath string
}

func (c *common) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", "track.sqlite3", "SQLite database path")
	f.StringVar(&c.dbPath, "d", "track.sqlite3", "SQLite database path (shorthand)")
	f.StringVar(&c.logPath, "log", "", "also write logs to this file")
	f.StringVar(&c.logPath, "l", "", "also write logs to this file (shorthand)")
}

// open sets up logging at minLevel, opens the database and loads the items.
// The returned function releases both.
func (c *common) open(ctx context.Context, minLevel slog.Level) (*app.App, func(), error) {
	closeLog, err := setupLogger(c.logPath, minLevel)
	if err != nil {
		return nil, nil, err
	}

	database, err := db.Open(ctx, c.dbPath)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	slog.Info("database ready", "path", c.dbPath)

	a, err := app.Open(ctx, database)
	if err != nil {
		database.Close()
		closeLog()
		return nil, nil, err
	}

	return a, func() {
		database.Close()
		closeLog()
	}, nil
}
