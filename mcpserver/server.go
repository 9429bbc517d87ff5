// Package mcpserver exposes the analysis operations as MCP tools over stdio
// or SSE, so coding agents can query project structure directly.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/treescope/treescope/report"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

// Server wraps an MCP server over a report client.
type Server struct {
	client *report.Client
	log    *logrus.Logger
	mcp    *server.MCPServer
}

// New builds the server and registers every tool.
func New(client *report.Client, log *logrus.Logger) *Server {
	s := &Server{
		client: client,
		log:    log,
		mcp: server.NewMCPServer(
			"treescope",
			Version,
			server.WithToolCapabilities(true),
		),
	}
	s.registerTools()
	return s
}

// ServeStdio serves MCP over stdin/stdout and blocks until the stream
// closes.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP on stdio")
	return server.ServeStdio(s.mcp)
}

// ServeSSE serves MCP over SSE on the given port and blocks.
func (s *Server) ServeSSE(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.log.WithField("addr", addr).Info("serving MCP over SSE")
	return server.NewSSEServer(s.mcp).Start(addr)
}

type args map[string]interface{}

func (a args) str(key string) string {
	v, _ := a[key].(string)
	return v
}

// textResult serializes an operation result for the MCP client. Failure
// envelopes become tool errors; everything else is returned as JSON text.
func textResult(result any) (*mcp.CallToolResult, error) {
	if fail, ok := result.(report.Failure); ok {
		return mcp.NewToolResultError(fail.Error), nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) addTool(name, desc string, opts []mcp.ToolOption, handler func(args) any) {
	toolOpts := append([]mcp.ToolOption{
		mcp.WithDescription(desc),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	}, opts...)
	tool := mcp.NewTool(name, toolOpts...)

	s.mcp.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}
		a := args(argsMap)
		if a.str("path") == "" {
			return mcp.NewToolResultError("path parameter is required"), nil
		}
		return textResult(handler(a))
	})
}

func pathOpt() mcp.ToolOption {
	return mcp.WithString("path",
		mcp.Required(),
		mcp.Description("File, directory, or glob pattern to analyze"))
}

func functionOpt() mcp.ToolOption {
	return mcp.WithString("function",
		mcp.Required(),
		mcp.Description("Function or method name"))
}

func classOpt(desc string) mcp.ToolOption {
	return mcp.WithString("class", mcp.Description(desc))
}

func (s *Server) registerTools() {
	s.addTool("get_functions",
		"List every function and method definition under a path, with line ranges and owning classes.",
		[]mcp.ToolOption{pathOpt()},
		func(a args) any { return s.client.Functions(a.str("path")) })

	s.addTool("get_classes",
		"List every class, interface, or type definition under a path, with methods, fields, and supertypes.",
		[]mcp.ToolOption{pathOpt()},
		func(a args) any { return s.client.Classes(a.str("path")) })

	s.addTool("get_fields",
		"List declared class fields under a path, optionally restricted to one class.",
		[]mcp.ToolOption{pathOpt(), classOpt("Only return fields of this class")},
		func(a args) any { return s.client.Fields(a.str("path"), a.str("class")) })

	s.addTool("get_function_calls",
		"List every call site under a path with its enclosing caller.",
		[]mcp.ToolOption{pathOpt()},
		func(a args) any { return s.client.Calls(a.str("path")) })

	s.addTool("get_imports",
		"List every import under a path.",
		[]mcp.ToolOption{pathOpt()},
		func(a args) any { return s.client.Imports(a.str("path")) })

	s.addTool("get_variables",
		"List every variable declaration under a path with its function scope.",
		[]mcp.ToolOption{pathOpt()},
		func(a args) any { return s.client.Variables(a.str("path")) })

	s.addTool("get_strings",
		"List every string literal under a path, verbatim.",
		[]mcp.ToolOption{pathOpt()},
		func(a args) any { return s.client.Strings(a.str("path")) })

	s.addTool("get_call_graph",
		"Map each caller to the functions it calls, across a path.",
		[]mcp.ToolOption{pathOpt()},
		func(a args) any { return s.client.CallGraph(a.str("path")) })

	s.addTool("get_reverse_call_graph",
		"Map each called function to its callers, across a path.",
		[]mcp.ToolOption{pathOpt()},
		func(a args) any { return s.client.ReverseCallGraph(a.str("path")) })

	s.addTool("get_callers",
		"List the distinct callers of a function under a path.",
		[]mcp.ToolOption{pathOpt(), functionOpt(), classOpt("Class qualifier echoed on each result")},
		func(a args) any { return s.client.Callers(a.str("path"), a.str("function"), a.str("class")) })

	s.addTool("get_callees",
		"List the distinct functions called from inside a function under a path.",
		[]mcp.ToolOption{pathOpt(), functionOpt(), classOpt("Only consider methods of this class")},
		func(a args) any { return s.client.Callees(a.str("path"), a.str("function"), a.str("class")) })

	s.addTool("find_references",
		"Find every occurrence of a symbol name under a path.",
		[]mcp.ToolOption{pathOpt(), mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Symbol name to search for"))},
		func(a args) any { return s.client.References(a.str("path"), a.str("symbol")) })

	s.addTool("get_function_definition",
		"Locate the first definition of a function under a path.",
		[]mcp.ToolOption{pathOpt(), functionOpt()},
		func(a args) any { return s.client.Definition(a.str("path"), a.str("function")) })

	s.addTool("get_function_variables",
		"List the variables declared inside a function under a path.",
		[]mcp.ToolOption{pathOpt(), functionOpt(), classOpt("Only consider methods of this class")},
		func(a args) any { return s.client.FunctionVariables(a.str("path"), a.str("function"), a.str("class")) })

	s.addTool("get_function_strings",
		"List the string literals inside a function under a path.",
		[]mcp.ToolOption{pathOpt(), functionOpt(), classOpt("Only consider methods of this class")},
		func(a args) any { return s.client.FunctionStrings(a.str("path"), a.str("function"), a.str("class")) })

	s.addTool("get_super_classes",
		"List the declared supertypes of a class, resolved to their definitions where possible.",
		[]mcp.ToolOption{pathOpt(), mcp.WithString("class",
			mcp.Required(),
			mcp.Description("Class name to look up"))},
		func(a args) any { return s.client.SuperClasses(a.str("path"), a.str("class")) })

	s.addTool("get_sub_classes",
		"List every class that declares the given class as a supertype.",
		[]mcp.ToolOption{pathOpt(), mcp.WithString("class",
			mcp.Required(),
			mcp.Description("Class name to look up"))},
		func(a args) any { return s.client.SubClasses(a.str("path"), a.str("class")) })
}
