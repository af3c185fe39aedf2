package registry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/vibematch/catalog"
	"github.com/jonwraymond/vibematch/matcher"
)

func newVibeRegistry(t *testing.T) *Registry {
	t.Helper()
	m, err := matcher.New(catalog.Default(), matcher.Options{})
	if err != nil {
		t.Fatalf("matcher.New failed: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })

	reg := New(Config{ServerInfo: ServerInfo{Name: "vibematch", Version: "test"}})
	if err := RegisterMatcherTools(reg, m); err != nil {
		t.Fatalf("RegisterMatcherTools failed: %v", err)
	}
	return reg
}

func callTool(t *testing.T, reg *Registry, name string, args map[string]any) map[string]any {
	t.Helper()
	result, err := reg.Execute(context.Background(), name, args)
	if err != nil {
		t.Fatalf("Execute(%s) failed: %v", name, err)
	}
	res, ok := result.(*mcp.CallToolResult)
	if !ok {
		t.Fatalf("expected *mcp.CallToolResult, got %T", result)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(text.Text), &decoded); err != nil {
		t.Fatalf("content is not JSON: %v", err)
	}
	if res.StructuredContent == nil {
		t.Error("expected structured content")
	}
	return decoded
}

func TestRegisterMatcherTools(t *testing.T) {
	reg := newVibeRegistry(t)

	tools, err := reg.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	want := []string{ToolMatchVibe, ToolListCatalog, ToolDescribeItem}
	if len(tools) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(tools))
	}
	for i, tool := range tools {
		if tool.ToolID() != want[i] {
			t.Errorf("tool %d = %s, want %s", i, tool.ToolID(), want[i])
		}
	}
}

func TestRegisterMatcherTools_NilMatcher(t *testing.T) {
	if err := RegisterMatcherTools(New(Config{}), nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestMatchVibeTool(t *testing.T) {
	reg := newVibeRegistry(t)

	got := callTool(t, reg, ToolMatchVibe, map[string]any{"query": "soft cozy aesthetic"})
	results, ok := got["results"].([]any)
	if !ok || len(results) != 3 {
		t.Fatalf("expected 3 results, got %v", got["results"])
	}
	good := int(got["good_matches"].(float64))
	if good < 0 || good > 3 {
		t.Errorf("good_matches = %d out of range", good)
	}
	if got["query"] != "soft cozy aesthetic" {
		t.Errorf("query = %v", got["query"])
	}
}

func TestMatchVibeTool_Limit(t *testing.T) {
	reg := newVibeRegistry(t)

	tests := []struct {
		name  string
		limit any
		want  int
	}{
		{"json number", float64(5), 5},
		{"int", 1, 1},
		{"beyond catalog", float64(20), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := callTool(t, reg, ToolMatchVibe, map[string]any{"query": "urban", "limit": tt.limit})
			if n := len(got["results"].([]any)); n != tt.want {
				t.Errorf("len(results) = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestMatchVibeTool_InvalidArgs(t *testing.T) {
	reg := newVibeRegistry(t)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing query", map[string]any{}},
		{"non-string query", map[string]any{"query": 3}},
		{"zero limit", map[string]any{"query": "x", "limit": float64(0)}},
		{"fractional limit", map[string]any{"query": "x", "limit": 1.5}},
		{"string limit", map[string]any{"query": "x", "limit": "3"}},
		{"huge limit", map[string]any{"query": "x", "limit": 1e20}},
		{"huge json.Number limit", map[string]any{"query": "x", "limit": json.Number("1e20")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Execute(context.Background(), ToolMatchVibe, tt.args)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestListCatalogTool(t *testing.T) {
	reg := newVibeRegistry(t)

	got := callTool(t, reg, ToolListCatalog, nil)
	items, ok := got["items"].([]any)
	if !ok || len(items) != 8 {
		t.Fatalf("expected 8 items, got %v", got["items"])
	}
	first := items[0].(map[string]any)
	if first["name"] != "Boho Dress" {
		t.Errorf("first item = %v, want Boho Dress", first["name"])
	}
}

func TestDescribeItemTool(t *testing.T) {
	reg := newVibeRegistry(t)

	got := callTool(t, reg, ToolDescribeItem, map[string]any{"name": "silk saree"})
	if got["name"] != "Silk Saree" {
		t.Errorf("name = %v, want Silk Saree", got["name"])
	}
	if got["dimensions"] != float64(512) {
		t.Errorf("dimensions = %v, want 512", got["dimensions"])
	}

	_, err := reg.Execute(context.Background(), ToolDescribeItem, map[string]any{"name": "Kimono"})
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected catalog.ErrNotFound, got %v", err)
	}
}

func TestMatchVibeTool_OverJSONRPC(t *testing.T) {
	reg := newVibeRegistry(t)

	params, _ := json.Marshal(map[string]any{
		"name":      ToolMatchVibe,
		"arguments": map[string]any{"query": "elegant traditional fashion", "limit": 2},
	})
	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "tools/call",
		Params:  params,
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error %+v", resp.Error)
	}
	if _, ok := resp.Result.(*mcp.CallToolResult); !ok {
		t.Errorf("expected *mcp.CallToolResult, got %T", resp.Result)
	}

	params, _ = json.Marshal(map[string]any{"name": ToolMatchVibe, "arguments": map[string]any{}})
	resp = reg.HandleRequest(context.Background(), MCPRequest{JSONRPC: "2.0", ID: 8, Method: "tools/call", Params: params})
	if resp.Error == nil || resp.Error.Code != ErrCodeInvalidParams {
		t.Errorf("expected ErrCodeInvalidParams, got %+v", resp.Error)
	}
}
