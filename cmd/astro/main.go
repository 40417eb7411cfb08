package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/astrolab/astro-trading/internal/engine"
	"github.com/astrolab/astro-trading/internal/execution"
	"github.com/astrolab/astro-trading/internal/logger"
	"github.com/astrolab/astro-trading/internal/strategy"
	"github.com/astrolab/astro-trading/internal/version"
	"github.com/astrolab/astro-trading/pkg/marketdata/provider"
)

// newEngine builds the engine from the run config. The API key comes from the
// config file or, if absent, from the provider's conventional env variable.
func newEngine(cfg engine.Config) (*engine.Engine, error) {
	apiKey := cfg.APIKey
	if apiKey == "" && cfg.Provider == provider.ProviderPolygon {
		apiKey = os.Getenv("POLYGON_API_KEY")
	}

	p, err := provider.NewProvider(cfg.Provider, apiKey)
	if err != nil {
		return nil, err
	}

	l, err := logger.NewLogger()
	if err != nil {
		return nil, err
	}

	return engine.NewEngine(p, l), nil
}

func backtestAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := engine.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	e, err := newEngine(cfg)
	if err != nil {
		return err
	}

	report, err := e.Run(ctx, cfg)
	if err != nil {
		return fmt.Errorf("backtest failed: %w", err)
	}

	fmt.Printf("%s %s: strategy %+.4f%% market %+.4f%% over %d bars, latest position %s\n",
		report.Symbol,
		cfg.Strategy.Name,
		report.Result.FinalStrategyReturn()*100,
		report.Result.FinalMarketReturn()*100,
		report.Result.Len(),
		report.LatestPosition(),
	)

	return nil
}

func signalAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := engine.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	e, err := newEngine(cfg)
	if err != nil {
		return err
	}

	signals, err := e.Signals(ctx, cfg)
	if err != nil {
		return fmt.Errorf("signal generation failed: %w", err)
	}

	prev, latest := execution.LatestTransition(signals)
	fmt.Printf("%s %s: %s -> %s\n", cfg.Symbol, cfg.Strategy.Name, prev, latest)

	if cmd.Bool("paper") {
		endpoint := execution.NewPaperEndpoint()

		id, err := e.ExecuteLatest(ctx, cfg, signals, endpoint)
		if err != nil {
			return fmt.Errorf("paper execution failed: %w", err)
		}

		if id.IsNone() {
			fmt.Println("no order needed")
		} else {
			orderID, _ := id.Take()
			fmt.Printf("paper order submitted: %s\n", orderID)
		}
	}

	return nil
}

func downloadAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := engine.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if p := cmd.String("store"); p != "" {
		cfg.StorePath = p
	}

	e, err := newEngine(cfg)
	if err != nil {
		return err
	}

	n, err := e.Download(ctx, cfg)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	fmt.Printf("stored %d bars for %s in %s\n", n, cfg.Symbol, cfg.StorePath)

	return nil
}

func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schema, err := strategy.ConfigJSONSchema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	fmt.Println(schema)

	return nil
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Path to the YAML run config",
		Required: true,
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "astro",
		Usage:   "Indicator-driven signal generation and backtesting",
		Version: version.Version,
		Commands: []*cli.Command{
			{
				Name:   "backtest",
				Usage:  "Backtest the configured strategy over historical bars",
				Flags:  []cli.Flag{configFlag()},
				Action: backtestAction,
			},
			{
				Name:  "signal",
				Usage: "Evaluate the configured strategy and print the latest signal transition",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "paper",
						Usage: "Submit the resulting order to the paper endpoint",
					},
				},
				Action: signalAction,
			},
			{
				Name:  "download",
				Usage: "Download historical bars into a DuckDB store",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "store",
						Aliases: []string{"s"},
						Usage:   "Path to the DuckDB database (overrides storePath in the config)",
					},
				},
				Action: downloadAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema for the strategy configuration",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
