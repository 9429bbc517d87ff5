package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

func callGraphCommand() *cli.Command {
	return &cli.Command{
		Name:  "call-graph",
		Usage: "map callers to callees across a path",
		Flags: append(commonFlags(),
			&cli.BoolFlag{
				Name:  "reverse",
				Usage: "map callees to their callers instead",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			path := cmd.String("path")
			if cmd.Bool("reverse") {
				return emit(cmd, client.ReverseCallGraph(path))
			}
			return emit(cmd, client.CallGraph(path))
		},
	}
}

func callersCommand() *cli.Command {
	return &cli.Command{
		Name:  "callers",
		Usage: "list the distinct callers of a function",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "function",
				Aliases:  []string{"fn"},
				Usage:    "function name to look up (required)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "class",
				Usage: "class qualifier echoed on each result",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.Callers(cmd.String("path"), cmd.String("function"), cmd.String("class")))
		},
	}
}

func calleesCommand() *cli.Command {
	return &cli.Command{
		Name:  "callees",
		Usage: "list the distinct functions called from inside a function",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "function",
				Aliases:  []string{"fn"},
				Usage:    "function name to look up (required)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "class",
				Usage: "only consider methods of this class",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.Callees(cmd.String("path"), cmd.String("function"), cmd.String("class")))
		},
	}
}

func refsCommand() *cli.Command {
	return &cli.Command{
		Name:  "refs",
		Usage: "find every occurrence of a symbol name",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "symbol",
				Aliases:  []string{"s"},
				Usage:    "symbol name to search for (required)",
				Required: true,
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.References(cmd.String("path"), cmd.String("symbol")))
		},
	}
}

func definitionCommand() *cli.Command {
	return &cli.Command{
		Name:  "definition",
		Usage: "locate the first definition of a function",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "function",
				Aliases:  []string{"fn"},
				Usage:    "function name to look up (required)",
				Required: true,
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.Definition(cmd.String("path"), cmd.String("function")))
		},
	}
}

func superClassesCommand() *cli.Command {
	return &cli.Command{
		Name:  "super-classes",
		Usage: "list the declared supertypes of a class",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "class",
				Usage:    "class name to look up (required)",
				Required: true,
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.SuperClasses(cmd.String("path"), cmd.String("class")))
		},
	}
}

func subClassesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sub-classes",
		Usage: "list every class declaring the given class as a supertype",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:     "class",
				Usage:    "class name to look up (required)",
				Required: true,
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, client.SubClasses(cmd.String("path"), cmd.String("class")))
		},
	}
}
