package main

import (
	"encoding/json"
	"errors"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/treescope/treescope/config"
	"github.com/treescope/treescope/lang"
	"github.com/treescope/treescope/report"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "path",
			Value: ".",
			Usage: "file, directory, or glob pattern to analyze",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a TOML config file",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "minimize output for LLM context limits",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Value:   runtime.NumCPU(),
			Usage:   "number of parallel workers",
		},
		&cli.Int64Flag{
			Name:  "max-bytes",
			Value: 2 * 1024 * 1024,
			Usage: "skip files larger than this",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
		},
	}
}

// newClient builds a report client from the config file layered under the
// command-line flags.
func newClient(cmd *cli.Command) (*report.Client, *config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if jobs := cmd.Int("jobs"); jobs > 0 {
		cfg.Scan.Jobs = jobs
	}
	if maxBytes := cmd.Int64("max-bytes"); maxBytes > 0 {
		cfg.Scan.MaxFileBytes = maxBytes
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.Log.Level = level
	}

	log := cfg.Logger()
	client := report.NewClient(lang.NewRegistry(), cfg.ScanOptions(log))
	return client, cfg, nil
}

// emit writes a success envelope to stdout. A Failure becomes the command's
// error, which main reports on stderr with a non-zero exit.
func emit(cmd *cli.Command, result any) error {
	if fail, ok := result.(report.Failure); ok {
		return errors.New(fail.Error)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if !cmd.Bool("compact") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
