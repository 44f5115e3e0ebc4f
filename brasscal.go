package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"brasscal/config"
	"brasscal/csvout"
	"brasscal/gcal"
	"brasscal/mapping"
	"brasscal/report"
	"brasscal/schedule"
	"brasscal/sheets"
	"brasscal/syncer"
	"brasscal/timeparse"
)

//go:embed .version
var embeddedVersion string

func run(args []string) error {
	if len(args) < 1 || args[0] == "help" {
		fmt.Println("brasscal - band event schedule to Google Calendar, version", embeddedVersion)
		fmt.Println("Usage:")
		fmt.Println("  brasscal sync                        sync the source spreadsheet to Google Calendar")
		fmt.Println("  brasscal csv <input.csv> <output.csv>  convert a batch file to an importable CSV")
		return nil
	}

	switch args[0] {
	case "sync":
		return runSync()
	case "csv":
		if len(args) != 3 {
			return errors.New("usage: brasscal csv <input.csv> <output.csv>")
		}
		return runCSV(args[1], args[2])
	default:
		return fmt.Errorf("unknown command %q, try 'brasscal help'", args[0])
	}
}

func runSync() error {
	loader, err := config.NewFileLoader()
	if err != nil {
		return fmt.Errorf("config.NewFileLoader: %w", err)
	}
	cfg, err := loader.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rep := report.NewConsole()
	ctx := context.Background()

	client, err := gcal.NewClient(ctx, loader)
	if err != nil {
		return fmt.Errorf("gcal.NewClient: %w", err)
	}
	calSvc, err := gcal.NewService(ctx, client)
	if err != nil {
		return fmt.Errorf("gcal.NewService: %w", err)
	}
	sheetSvc, err := sheets.NewService(ctx, client, rep)
	if err != nil {
		return fmt.Errorf("sheets.NewService: %w", err)
	}

	ids, closeStore, err := openMappingStore(cfg, sheetSvc, rep)
	if err != nil {
		return err
	}
	defer closeStore()

	rep.Infof("fetching sheet data...")
	rows, err := sheetSvc.ReadRange(cfg.SourceSpreadsheetID, cfg.SourceRange)
	if err != nil {
		return fmt.Errorf("reading source rows: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	rep.Infof("found %d rows of data, starting sync...", len(rows))

	parser := timeparse.New()
	parser.BareDuration = cfg.BareDuration()

	records := schedule.MapSheetRows(rows, rep)
	engine := syncer.New(calSvc, ids, parser, rep, cfg)
	if err := engine.Sync(records); err != nil {
		return err
	}

	rep.Infof("sync complete")
	return nil
}

func openMappingStore(cfg *config.Config, sheetSvc *sheets.Service, rep report.Reporter) (mapping.Store, func(), error) {
	switch cfg.MappingStore {
	case "sqlite":
		store, err := mapping.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "sheet":
		store := mapping.NewSheetStore(sheetSvc, cfg.MappingSpreadsheetID, cfg.MappingSheetName, rep)
		return store, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown mapping_store %q (want \"sheet\" or \"sqlite\")", cfg.MappingStore)
	}
}

func runCSV(inPath, outPath string) error {
	rep := report.NewConsole()

	cfg := config.Default()
	if loader, err := config.NewFileLoader(); err == nil {
		if loaded, err := loader.LoadConfig(); err == nil {
			cfg = loaded
		}
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	records, err := csvout.ReadEvents(in, rep)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	parser := timeparse.New()
	parser.BareDuration = cfg.BareDuration()

	writer := csvout.NewWriter(parser, rep)
	if err := writer.WriteEvents(out, records); err != nil {
		return err
	}

	rep.Infof("wrote %s", outPath)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
