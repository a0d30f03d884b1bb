package main

import (
	"fmt"
	"io"
	"os"

	"farmers-market/internal/catalog"
	"farmers-market/internal/config"
	"farmers-market/internal/stand"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("format", cfg.Output.Format).
		Bool("stdout", cfg.Output.ToStdout()).
		Msg("starting farmers market extraction")

	encoder, err := catalog.NewEncoder(cfg.Output.Format, cfg.Output.Indent)
	if err != nil {
		return fmt.Errorf("failed to initialize encoder: %w", err)
	}
	sink := catalog.NewSink(cfg.Output, stdout, logger)

	groceries := catalog.New(logger)

	if err := catalog.Collect[stand.AppleItem, stand.AppleData](groceries, 0, stand.AppleStand{}); err != nil {
		return err
	}

	if err := catalog.Collect[stand.BaconItem, stand.BaconData](groceries, 1, stand.BaconStand{}); err != nil {
		return err
	}

	if err := groceries.Publish(encoder, sink); err != nil {
		return fmt.Errorf("failed to publish catalog: %w", err)
	}

	logger.Info().Msg("farmers market extraction completed")

	return nil
}
