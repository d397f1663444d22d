package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/cli"
	"github.com/alexanderramin/curricle/internal/db"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/importer"
	"github.com/alexanderramin/curricle/internal/repository"
	"github.com/alexanderramin/curricle/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.curricle/curricle.db
	dbPath := os.Getenv("CURRICLE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".curricle", "curricle.db")
	}

	// Data directory holding modules.json and related_tracks.json:
	// env var, ./data during development, else ~/.curricle
	dataDir := os.Getenv("CURRICLE_DATA")
	if dataDir == "" {
		if stat, err := os.Stat("./data"); err == nil && stat.IsDir() {
			dataDir = "./data"
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			dataDir = filepath.Join(home, ".curricle")
		}
	}

	cat, related, err := loadCatalog(dataDir)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	studentRepo := repository.NewSQLiteStudentRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("CURRICLE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Students: service.NewStudentService(cat, related, studentRepo),
		Advisor:  service.NewAdvisorService(cat, related, studentRepo),
		Planning: service.NewPlanningService(cat, related, studentRepo, uow, observers...),
		Import:   service.NewImportService(cat, uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	root := cli.NewRootCmd(app)

	// Bare invocation on a terminal drops into the interactive shell.
	if len(os.Args) == 1 && app.IsInteractive() {
		root.SetArgs([]string{"shell"})
	}

	return root.Execute()
}

// loadCatalog reads and validates the catalog and related-track files.
// related_tracks.json is optional; modules.json is not.
func loadCatalog(dataDir string) (*catalog.Catalog, *domain.RelatedTracks, error) {
	modulesPath := filepath.Join(dataDir, "modules.json")
	records, err := importer.LoadModuleRecords(modulesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog from %s: %w", modulesPath, err)
	}
	if errs := importer.ValidateModuleRecords(records); len(errs) > 0 {
		msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
		for _, e := range errs {
			msg += "\n  - " + e.Error()
		}
		return nil, nil, fmt.Errorf("%s", msg)
	}

	cat, err := catalog.Build(importer.ToModules(records))
	if err != nil {
		return nil, nil, fmt.Errorf("building catalog: %w", err)
	}

	related := domain.NewRelatedTracks(nil)
	tracksPath := filepath.Join(dataDir, "related_tracks.json")
	if pairs, err := importer.LoadRelatedTracks(tracksPath); err == nil {
		related = domain.NewRelatedTracks(pairs)
	} else if !os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("loading related tracks from %s: %w", tracksPath, err)
	}

	return cat, related, nil
}
