package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "treescope",
		Usage: "structural code exploration with tree-sitter",
		Commands: []*cli.Command{
			functionsCommand(),
			classesCommand(),
			fieldsCommand(),
			callsCommand(),
			importsCommand(),
			variablesCommand(),
			stringsCommand(),
			callGraphCommand(),
			callersCommand(),
			calleesCommand(),
			refsCommand(),
			definitionCommand(),
			superClassesCommand(),
			subClassesCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		writeError(err)
		os.Exit(1)
	}
}

func writeError(err error) {
	enc := json.NewEncoder(os.Stderr)
	enc.Encode(map[string]string{
		"error": err.Error(),
	})
}
