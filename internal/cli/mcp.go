package cli

import (
	mcpadapter "github.com/kje7713-dev/Grappling-Chainz/pkg/adapters/mcp"
)

// RunMCP serves the engine over MCP on stdio.
func RunMCP(opts RunOptions) error {
	engine, err := NewEngine(opts)
	if err != nil {
		return err
	}
	return mcpadapter.NewServer(engine).ServeStdio()
}
