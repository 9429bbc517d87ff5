package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

func functionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "functions",
		Usage: "list function and method definitions",
		Flags: commonFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.Functions(cmd.String("path")))
		},
	}
}

func classesCommand() *cli.Command {
	return &cli.Command{
		Name:  "classes",
		Usage: "list class, interface, and type definitions",
		Flags: commonFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.Classes(cmd.String("path")))
		},
	}
}

func fieldsCommand() *cli.Command {
	return &cli.Command{
		Name:  "fields",
		Usage: "list declared class fields",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "class",
				Usage: "only return fields of this class",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.Fields(cmd.String("path"), cmd.String("class")))
		},
	}
}

func callsCommand() *cli.Command {
	return &cli.Command{
		Name:  "calls",
		Usage: "list call sites with their enclosing callers",
		Flags: commonFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.Calls(cmd.String("path")))
		},
	}
}

func importsCommand() *cli.Command {
	return &cli.Command{
		Name:  "imports",
		Usage: "list imports",
		Flags: commonFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.Imports(cmd.String("path")))
		},
	}
}

func variablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "variables",
		Usage: "list variable declarations with their scopes",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "function",
				Aliases: []string{"fn"},
				Usage:   "only return variables declared inside this function",
			},
			&cli.StringFlag{
				Name:  "class",
				Usage: "with --function, only consider methods of this class",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			path := cmd.String("path")
			if fn := cmd.String("function"); fn != "" {
				return emit(cmd, client.FunctionVariables(path, fn, cmd.String("class")))
			}
			return emit(cmd, client.Variables(path))
		},
	}
}

func stringsCommand() *cli.Command {
	return &cli.Command{
		Name:  "strings",
		Usage: "list string literals",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "function",
				Aliases: []string{"fn"},
				Usage:   "only return strings appearing inside this function",
			},
			&cli.StringFlag{
				Name:  "class",
				Usage: "with --function, only consider methods of this class",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			path := cmd.String("path")
			if fn := cmd.String("function"); fn != "" {
				return emit(cmd, client.FunctionStrings(path, fn, cmd.String("class")))
			}
			return emit(cmd, client.Strings(path))
		},
	}
}
