// Package mcp exposes the solver as Model Context Protocol tools over
// stdio, so an LLM client can find roots without shelling out.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zofmath/zof"
	"github.com/zofmath/zof/pkg/domain"
)

// Server wraps the solver engine as an MCP server.
type Server struct {
	solve     func(domain.Request) (*domain.Result, error)
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools.
func NewServer() *Server {
	s := &Server{
		solve:     zof.Solve,
		mcpServer: server.NewMCPServer("zof-mcp", zof.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool("solve_root",
		mcp.WithDescription("Find a root of f(x) = 0 with a classical iterative method. "+
			"Returns the root, per-iteration trace, and final error as JSON."),
		mcp.WithString("method", mcp.Required(),
			mcp.Description("One of: bisection, regula_falsi, secant, newton_raphson, fixed_point, modified_secant")),
		mcp.WithString("function", mcp.Required(),
			mcp.Description("Infix expression in x, e.g. 'x**2 - 4' or 'cos(x) - x'. For fixed_point pass g(x) where x = g(x).")),
		mcp.WithString("a", mcp.Description("Left bracket endpoint (bisection, regula_falsi)")),
		mcp.WithString("b", mcp.Description("Right bracket endpoint (bisection, regula_falsi)")),
		mcp.WithString("x0", mcp.Description("Initial guess (secant, newton_raphson, fixed_point, modified_secant)")),
		mcp.WithString("x1", mcp.Description("Second initial guess (secant)")),
		mcp.WithString("delta", mcp.Description("Perturbation fraction for modified_secant (default 0.01)")),
		mcp.WithString("tolerance", mcp.Description("Convergence tolerance (default 1e-6)")),
		mcp.WithString("max_iterations", mcp.Description("Iteration cap (default 100)")),
	)
	s.mcpServer.AddTool(solveTool, s.handleSolve)

	s.mcpServer.AddTool(mcp.NewTool("list_methods",
		mcp.WithDescription("List the supported root-finding methods with their required parameters."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type info struct {
			ID     string   `json:"id"`
			Name   string   `json:"name"`
			Params []string `json:"params"`
		}
		methods := domain.Methods()
		out := make([]info, len(methods))
		for i, m := range methods {
			out[i] = info{ID: string(m), Name: m.DisplayName(), Params: m.Params()}
		}
		jsonBytes, _ := json.Marshal(out)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	method, _ := args["method"].(string)
	function, _ := args["function"].(string)
	req := domain.Request{
		Method:   domain.Method(method),
		Function: function,
	}

	for name, dst := range map[string]**float64{
		"a": &req.A, "b": &req.B, "x0": &req.X0, "x1": &req.X1, "delta": &req.Delta,
	} {
		v, ok, err := floatArg(args, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if ok {
			*dst = &v
		}
	}
	if v, ok, err := floatArg(args, "tolerance"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if ok {
		req.Tolerance = v
	}
	if v, ok, err := floatArg(args, "max_iterations"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if ok {
		req.MaxIterations = int(v)
	}

	res, err := s.solve(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}
	jsonBytes, err := json.Marshal(res)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// floatArg reads an argument that may arrive as a JSON number or a
// numeric string. ok is false when the argument is absent or empty.
func floatArg(args map[string]any, name string) (v float64, ok bool, err error) {
	raw, present := args[name]
	if !present {
		return 0, false, nil
	}
	switch t := raw.(type) {
	case float64:
		return t, true, nil
	case string:
		if t == "" {
			return 0, false, nil
		}
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false, fmt.Errorf("argument %q is not a number: %q", name, t)
		}
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("argument %q has unsupported type %T", name, raw)
	}
}
