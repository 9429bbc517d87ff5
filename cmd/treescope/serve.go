package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/treescope/treescope/mcpserver"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the analysis tools over MCP",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "mode",
				Usage: "transport: stdio or sse (overrides config)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "listen port for sse mode (overrides config)",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}
			if mode := cmd.String("mode"); mode != "" {
				cfg.Server.Mode = mode
			}
			if port := cmd.Int("port"); port > 0 {
				cfg.Server.Port = port
			}

			srv := mcpserver.New(client, cfg.Logger())
			switch cfg.Server.Mode {
			case "stdio":
				return srv.ServeStdio()
			case "sse":
				return srv.ServeSSE(cfg.Server.Port)
			default:
				return fmt.Errorf("unknown server mode: %s", cfg.Server.Mode)
			}
		},
	}
}
