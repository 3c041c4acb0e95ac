package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/quoteserver/internal/config"
	"github.com/mrlokans/quoteserver/internal/database"
	"github.com/mrlokans/quoteserver/internal/database/quotes"
	"github.com/mrlokans/quoteserver/internal/importers"
)

// ImportCommand loads a JSON quote file into a database and exits
type ImportCommand struct {
	FilePath    string
	DatabaseURL string
	Verbose     bool
	DryRun      bool

	out io.Writer
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand() *ImportCommand {
	return &ImportCommand{out: os.Stdout}
}

// ParseFlags parses command line flags
func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a JSON array of {\"id\", \"quote\", \"author\"} records")
	fs.StringVar(&cmd.DatabaseURL, "db", config.DefaultDatabaseURL, "Database URL, e.g. sqlite:db/quotes.db")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <quotes.json> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import quotes into the database. Records whose id already exists are\n")
		fmt.Fprintf(os.Stderr, "left untouched, so the same file can be imported repeatedly.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file assets/quotes.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -file quotes.json -db sqlite:/var/lib/quotes.db -dry-run -verbose\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" && fs.NArg() > 0 {
		cmd.FilePath = fs.Arg(0)
	}
	if cmd.FilePath == "" {
		return errors.New("missing quote file: use -file <path>")
	}
	return nil
}

// Run executes the import command
func (cmd *ImportCommand) Run(ctx context.Context) error {
	if cmd.out == nil {
		cmd.out = os.Stdout
	}

	fmt.Fprintln(cmd.out, "Quote Import")
	fmt.Fprintln(cmd.out, "============")
	if cmd.DryRun {
		fmt.Fprintln(cmd.out, "DRY RUN MODE - No changes will be made")
	}

	records, err := importers.ReadQuotesFile(cmd.FilePath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out, "Found %d quotes in %s\n", len(records), cmd.FilePath)

	if cmd.Verbose {
		for _, record := range records {
			fmt.Fprintf(cmd.out, "  #%d %q by %s\n", record.ID, record.Quote, authorOrUnknown(record.Author))
		}
	}

	if cmd.DryRun {
		fmt.Fprintln(cmd.out, "Dry run complete. Use without -dry-run to import.")
		return nil
	}

	db, err := database.NewDatabase(cmd.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	importer := importers.NewImporter(quotes.NewRepository(db.DB))
	result, err := importer.Import(ctx, records)

	fmt.Fprintf(cmd.out, "Saved to %s: %d inserted, %d already present, %d failed\n",
		db.Path, result.Inserted, result.Skipped, result.Failed)
	if cmd.Verbose {
		for _, failure := range result.Failures {
			fmt.Fprintf(cmd.out, "  record %d (id %d) %s: %v\n", failure.Index, failure.ID, failure.Reason, failure.Err)
		}
	}
	return err
}

func authorOrUnknown(author string) string {
	if author == "" {
		return "unknown"
	}
	return author
}
