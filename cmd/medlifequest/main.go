package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/medlifequest/internal/api"
	"github.com/terraincognita07/medlifequest/internal/cli"
	"github.com/terraincognita07/medlifequest/internal/config"
	"github.com/terraincognita07/medlifequest/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "medlifequest: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin *os.File, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(appLogger)

	if len(args) == 0 {
		return serve(cfg, appLogger)
	}

	switch args[0] {
	case "reset-account":
		return runResetAccount(cfg, appLogger, args[1:], stdin, stdout)
	case "serve":
		return serve(cfg, appLogger)
	default:
		return fmt.Errorf("unknown command %q (want serve or reset-account)", args[0])
	}
}

func runResetAccount(cfg *config.Config, appLogger *slog.Logger, args []string, stdin *os.File, stdout io.Writer) error {
	flags := flag.NewFlagSet("reset-account", flag.ContinueOnError)
	flags.SetOutput(stdout)
	yes := flags.Bool("yes", false, "skip the confirmation prompt")
	if err := flags.Parse(args); err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg, appLogger)
	if err != nil {
		return err
	}
	defer closeStore()

	return cli.RunResetAccountCommand(store, appLogger, cli.ResetOptions{
		Yes: *yes,
		In:  stdin,
		Out: stdout,
	})
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "MedLifeQuest",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func serve(cfg *config.Config, appLogger *slog.Logger) error {
	store, closeStore, err := openStore(cfg, appLogger)
	if err != nil {
		return err
	}
	defer closeStore()

	handler, err := api.NewHandler(api.Dependencies{
		Store:    store,
		Logger:   appLogger,
		Location: cfg.Location(),
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := newApp(handler)

	notifier, err := newReminderNotifier(cfg, handler, appLogger)
	if err != nil {
		return err
	}
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	if notifier != nil {
		notifier.Start(lifecycleCtx)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", slog.String("error", err.Error()))
		}
	}()

	appLogger.Info("medlifequest listening",
		slog.String("address", cfg.Address()),
		slog.String("backend", cfg.Store.Backend),
		slog.String("timezone", cfg.Location().String()),
	)
	if err := app.Listen(cfg.Address()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
