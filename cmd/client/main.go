package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/calkeep/go-cal-keeper/internal/adapter"
	"github.com/calkeep/go-cal-keeper/internal/config"
	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const wireTimeLayout = "2006-01-02T15:04:05"

func main() {
	printBuildInfo()

	log := logger.NewLogger("cal-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	flags := flag.NewFlagSet("cal-keeper-client", flag.ExitOnError)
	flags.StringVar(&cfg.Adapter.BaseURL, "a", cfg.Adapter.BaseURL, "server base URL")
	flags.StringVar(&cfg.Credentials.Email, "email", cfg.Credentials.Email, "account email")
	flags.StringVar(&cfg.Credentials.Password, "password", cfg.Credentials.Password, "account password")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: cal-keeper-client [flags] <register|create|delete|list> [command flags]\n")
		flags.PrintDefaults()
	}
	if err = flags.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	if flags.NArg() < 1 {
		flags.Usage()
		os.Exit(2)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
		Credentials: models.Credentials{
			Email:    cfg.Credentials.Email,
			Password: cfg.Credentials.Password,
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Adapter.RequestTimeout)
	defer cancel()

	command, args := flags.Arg(0), flags.Args()[1:]
	switch command {
	case "register":
		err = runRegister(ctx, serverAdapter)
	case "create":
		err = runCreate(ctx, serverAdapter, args)
	case "delete":
		err = runDelete(ctx, serverAdapter, args)
	case "list":
		err = runList(ctx, serverAdapter, args)
	default:
		flags.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

func runRegister(ctx context.Context, serverAdapter adapter.ServerAdapter) error {
	if err := serverAdapter.Register(ctx); err != nil {
		return err
	}

	fmt.Println("registered")
	return nil
}

func runCreate(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	flags := flag.NewFlagSet("create", flag.ExitOnError)
	name := flags.String("name", "", "event name")
	start := flags.String("start", "", "event start (2006-01-02T15:04:05)")
	end := flags.String("end", "", "event end (2006-01-02T15:04:05)")
	notes := flags.String("notes", "", "optional notes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	startTime, err := time.Parse(wireTimeLayout, *start)
	if err != nil {
		return fmt.Errorf("parse -start: %w", err)
	}
	endTime, err := time.Parse(wireTimeLayout, *end)
	if err != nil {
		return fmt.Errorf("parse -end: %w", err)
	}

	if err = serverAdapter.CreateEvent(ctx, models.Event{
		Name:  *name,
		Start: startTime,
		End:   endTime,
		Notes: *notes,
	}); err != nil {
		return err
	}

	fmt.Println("event created")
	return nil
}

func runDelete(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	flags := flag.NewFlagSet("delete", flag.ExitOnError)
	eventID := flags.Int64("id", 0, "event id")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := serverAdapter.DeleteEvent(ctx, *eventID); err != nil {
		return err
	}

	fmt.Println("event deleted")
	return nil
}

func runList(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	flags := flag.NewFlagSet("list", flag.ExitOnError)
	from := flags.String("from", "", "earliest event start (2006-01-02T15:04:05)")
	to := flags.String("to", "", "latest event end (2006-01-02T15:04:05)")
	search := flags.String("search", "", "substring to match against name and notes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	filter := models.EventFilter{Search: *search}
	if *from != "" {
		fromTime, err := time.Parse(wireTimeLayout, *from)
		if err != nil {
			return fmt.Errorf("parse -from: %w", err)
		}
		filter.Start = &fromTime
	}
	if *to != "" {
		toTime, err := time.Parse(wireTimeLayout, *to)
		if err != nil {
			return fmt.Errorf("parse -to: %w", err)
		}
		filter.End = &toTime
	}

	events, err := serverAdapter.Events(ctx, filter)
	if err != nil {
		return err
	}

	for _, event := range events {
		fmt.Printf("%d\t%s\t%s\t%s\n",
			event.ID,
			event.Start.Format(wireTimeLayout),
			event.End.Format(wireTimeLayout),
			event.Name,
		)
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
