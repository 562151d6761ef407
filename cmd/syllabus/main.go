package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/syllabus/internal/cli"
	"github.com/alexanderramin/syllabus/internal/config"
	"github.com/alexanderramin/syllabus/internal/db"
	"github.com/alexanderramin/syllabus/internal/feed"
	"github.com/alexanderramin/syllabus/internal/logger"
	"github.com/alexanderramin/syllabus/internal/repository"
	"github.com/alexanderramin/syllabus/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Options{ConfigFile: os.Getenv("SYLLABUS_CONFIG")})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, Dir: cfg.LogDir}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logger.Debug("config loaded", "file", cfg.ConfigFile, "driver", cfg.DB.Driver, "feed", cfg.Feed.Source)

	// Open database
	handle, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer handle.Close()

	// Wire repositories
	assignmentRepo := repository.NewSQLSlotAssignmentRepo(handle.Conn())
	unitLogRepo := repository.NewSQLUnitLogRepo(handle.Conn())

	// Wire the calendar feed source
	var source feed.Source
	switch cfg.Feed.Source {
	case config.FeedSourceHTTP:
		source = feed.NewHTTPSource(feed.HTTPConfig{
			BaseURL:    cfg.Feed.URL,
			Timeout:    cfg.Feed.Timeout,
			MaxRetries: cfg.Feed.MaxRetries,
		})
	default:
		source = feed.NewStoreSource(assignmentRepo, unitLogRepo)
	}

	// Wire services
	observer := service.NewLogUseCaseObserver(logger.Logger)
	newCalendar := func(teacherID string) service.CalendarService {
		return service.NewCalendarService(source, teacherID, cfg.Location, service.WithObserver(observer))
	}

	app := &cli.App{
		Calendar:    newCalendar(cfg.Teacher),
		Feeds:       service.NewFeedService(assignmentRepo, unitLogRepo, handle.UnitOfWork(), cfg.Location, observer),
		CalendarFor: newCalendar,
		Teacher:     cfg.Teacher,
		Location:    cfg.Location,
		HTTPAddr:    cfg.HTTPAddr,
		Debug:       cfg.Debug,
	}

	// Detect interactive terminal for the spinner and huh forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
