package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/andresuchdata/printfloor/internal/app"
	"github.com/andresuchdata/printfloor/internal/config"
	"github.com/andresuchdata/printfloor/internal/report"
	"github.com/andresuchdata/printfloor/internal/seed"
	"github.com/andresuchdata/printfloor/pkg/logger"
	"github.com/urfave/cli/v2"
)

type floorKey struct{}

type floor struct {
	app    *app.App
	loaded *seed.Result
}

func newFixtureFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "fixture",
		Aliases:  []string{"f"},
		Usage:    "JSON fixture with orders, plans, outputs, downtime and development items",
		Required: true,
		EnvVars:  []string{"APP_SEED_FILE"},
	}
}

func newOutFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Write CSV to this file instead of stdout",
	}
}

func loadFloor(c *cli.Context) error {
	cfg := config.Load()
	logger.SetLevel(c.String("log-level"))

	a := app.New(cfg)
	res, err := a.Seed(c.Context, c.String("fixture"))
	if err != nil {
		return err
	}

	c.Context = context.WithValue(c.Context, floorKey{}, &floor{app: a, loaded: res})
	return nil
}

func floorFrom(c *cli.Context) (*floor, error) {
	f, ok := c.Context.Value(floorKey{}).(*floor)
	if !ok || f == nil {
		return nil, fmt.Errorf("fixture not loaded")
	}
	return f, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "floorctl",
		Usage: "Print production reports for a floor fixture",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "summary",
				Usage:  "Per-order production summary as CSV",
				Flags:  []cli.Flag{newFixtureFlag(), newOutFlag()},
				Before: loadFloor,
				Action: runSummary,
			},
			{
				Name:   "matrix",
				Usage:  "Production and dispatch by date as CSV",
				Flags:  []cli.Flag{newFixtureFlag(), newOutFlag()},
				Before: loadFloor,
				Action: runMatrix,
			},
			{
				Name:  "floor-sheet",
				Usage: "Daily floor sheet of one plan as JSON",
				Flags: []cli.Flag{
					newFixtureFlag(),
					&cli.StringFlag{Name: "date", Usage: "Report date (YYYY-MM-DD)", Required: true},
					&cli.StringFlag{Name: "plan", Usage: "Plan fixture ref or id", Required: true},
				},
				Before: loadFloor,
				Action: runFloorSheet,
			},
			{
				Name:  "plans",
				Usage: "Plans with output on a date",
				Flags: []cli.Flag{
					newFixtureFlag(),
					&cli.StringFlag{Name: "date", Usage: "Report date (YYYY-MM-DD)", Required: true},
				},
				Before: loadFloor,
				Action: runPlans,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("floorctl failed")
	}
}

func runSummary(c *cli.Context) error {
	f, err := floorFrom(c)
	if err != nil {
		return err
	}
	rows, err := f.app.Services.Reports.Summary(c.Context)
	if err != nil {
		return err
	}
	return withOutput(c, func(w io.Writer) error {
		return report.WriteSummaryCSV(w, rows)
	})
}

func runMatrix(c *cli.Context) error {
	f, err := floorFrom(c)
	if err != nil {
		return err
	}
	m, err := f.app.Services.Reports.Matrix(c.Context)
	if err != nil {
		return err
	}
	return withOutput(c, func(w io.Writer) error {
		return report.WriteMatrixCSV(w, m)
	})
}

func runFloorSheet(c *cli.Context) error {
	f, err := floorFrom(c)
	if err != nil {
		return err
	}

	planID := c.String("plan")
	if id, ok := f.loaded.Plans[planID]; ok {
		planID = id
	}

	sheet, err := f.app.Services.Reports.DailyFloorSheet(c.Context, c.String("date"), planID)
	if err != nil {
		return err
	}
	if !sheet.Found {
		fmt.Fprintf(c.App.ErrWriter, "no output recorded for plan %s on %s\n", c.String("plan"), c.String("date"))
	}
	return writeJSON(c.App.Writer, sheet)
}

func runPlans(c *cli.Context) error {
	f, err := floorFrom(c)
	if err != nil {
		return err
	}
	plans, err := f.app.Services.Reports.PlansForDate(c.Context, c.String("date"))
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, plans)
}

func withOutput(c *cli.Context, write func(io.Writer) error) error {
	path := c.String("out")
	if path == "" {
		return write(c.App.Writer)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := write(file); err != nil {
		return err
	}
	logger.Log.Info().Str("path", path).Msg("report written")
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
