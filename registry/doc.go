// Package registry provides high-level helpers for serving the vibe
// matcher as an MCP server.
//
// Registry combines toolfoundation/model tool definitions with the search
// package's BM25 ranking and exposes them over JSON-RPC 2.0.
//
// Features:
//   - Local tool registration with handlers
//   - BM25-based tool search
//   - MCP protocol handlers (initialize, tools/list, tools/call)
//   - Multiple transports (stdio, HTTP, SSE)
//   - Vibe matching tools (see [RegisterMatcherTools])
//
// Example usage:
//
//	m, _ := matcher.New(catalog.Default(), matcher.Options{})
//	defer m.Close()
//
//	reg := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "vibematch",
//	        Version: "1.0.0",
//	    },
//	})
//	if err := registry.RegisterMatcherTools(reg, m); err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	reg.Start(ctx)
//	defer reg.Stop()
//
//	registry.ServeStdio(ctx, reg)
//
// Tools are advertised and called by their canonical ID, for example
// "vibe:match_vibe". A bare tool name is accepted when it is unambiguous.
package registry
