package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/vibematch/catalog"
	"github.com/jonwraymond/vibematch/matcher"
)

// Namespace is the namespace of the vibe matching tools.
const Namespace = "vibe"

// Tool IDs registered by RegisterMatcherTools.
const (
	ToolMatchVibe    = Namespace + ":match_vibe"
	ToolListCatalog  = Namespace + ":list_catalog"
	ToolDescribeItem = Namespace + ":describe_item"
)

// ItemInfo is the tool view of a catalog item.
type ItemInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Dimensions  int      `json:"dimensions,omitempty"`
}

// RegisterMatcherTools registers the vibe matching tools backed by m.
func RegisterMatcherTools(r *Registry, m *matcher.Matcher) error {
	if m == nil {
		return fmt.Errorf("%w: nil matcher", ErrInvalidRequest)
	}

	tools := []struct {
		name, description string
		schema            map[string]any
		handler           ToolHandler
		tags              []string
	}{
		{
			name:        "match_vibe",
			description: "Rank catalog products against a free-text vibe and count the good matches",
			schema: objectSchema(map[string]any{
				"query": map[string]any{"type": "string", "description": "Vibe to match, e.g. \"soft cozy aesthetic\""},
				"limit": map[string]any{"type": "integer", "minimum": 1, "description": "Number of results (default: matcher top-k)"},
			}, "query"),
			handler: matchVibeHandler(m),
			tags:    []string{"match", "search"},
		},
		{
			name:        "list_catalog",
			description: "List every product in the catalog with its tags",
			schema:      objectSchema(map[string]any{}),
			handler:     listCatalogHandler(m.Catalog()),
			tags:        []string{"catalog"},
		},
		{
			name:        "describe_item",
			description: "Describe a single catalog product by name",
			schema: objectSchema(map[string]any{
				"name": map[string]any{"type": "string", "description": "Product name (case-insensitive)"},
			}, "name"),
			handler: describeItemHandler(m.Catalog()),
			tags:    []string{"catalog"},
		},
	}

	for _, t := range tools {
		err := r.RegisterLocalFunc(t.name, t.description, t.schema, t.handler,
			WithNamespace(Namespace), WithTags(t.tags...))
		if err != nil {
			return fmt.Errorf("register %s: %w", t.name, err)
		}
	}
	return nil
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func matchVibeHandler(m *matcher.Matcher) ToolHandler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		query, err := stringArg(args, "query")
		if err != nil {
			return nil, err
		}
		limit, err := intArg(args, "limit")
		if err != nil {
			return nil, err
		}

		report, err := m.Match(ctx, query)
		if err != nil {
			return nil, err
		}
		if limit > 0 && limit != len(report.Results) {
			ranked, err := m.Rank(ctx, query)
			if err != nil {
				return nil, err
			}
			report.Results = ranked.Top(limit)
			report.GoodMatches = report.Results.GoodMatches(report.Threshold)
		}
		return toolResult(report)
	}
}

func listCatalogHandler(cat *catalog.Catalog) ToolHandler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		items := cat.Items()
		infos := make([]ItemInfo, len(items))
		for i, it := range items {
			infos[i] = ItemInfo{Name: it.Name, Description: it.Description, Tags: it.Tags}
		}
		return toolResult(map[string]any{"items": infos})
	}
}

func describeItemHandler(cat *catalog.Catalog) ToolHandler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		name, err := stringArg(args, "name")
		if err != nil {
			return nil, err
		}
		it, err := cat.Get(name)
		if err != nil {
			return nil, err
		}
		return toolResult(ItemInfo{
			Name:        it.Name,
			Description: it.Description,
			Tags:        it.Tags,
			Dimensions:  len(it.Embedding),
		})
	}
}

func toolResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(data)}},
		StructuredContent: v,
	}, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrInvalidRequest, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidRequest, key)
	}
	return strings.TrimSpace(s), nil
}

// intArg returns 0 when key is absent.
func intArg(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, nil
	}
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidRequest, key, err)
		}
		n = f
	default:
		return 0, fmt.Errorf("%w: %q must be an integer", ErrInvalidRequest, key)
	}
	if n != math.Trunc(n) || n < 1 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %q must be a positive integer up to %d", ErrInvalidRequest, key, math.MaxInt32)
	}
	return int(n), nil
}
