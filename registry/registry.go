package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/jonwraymond/vibematch/search"
	"github.com/jonwraymond/vibematch/semantic"
)

// Config configures a Registry.
type Config struct {
	SearchConfig *search.BM25Config
	ServerInfo   ServerInfo

	// Logger receives one debug entry per tool call. If nil, logging is disabled.
	Logger *zap.Logger
}

// ServerInfo describes this MCP server for initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry is a high-level MCP tool registry with built-in search and
// local tool registration.
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]model.Tool
	order    []string
	handlers map[string]ToolHandler
	searcher *search.BM25Searcher
	config   Config
	logger   *zap.Logger

	started bool
}

// New creates a new Registry with the given config.
func New(cfg Config) *Registry {
	searcher := search.NewBM25Searcher(search.BM25Config{})
	if cfg.SearchConfig != nil {
		searcher = search.NewBM25Searcher(*cfg.SearchConfig)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registry{
		tools:    make(map[string]model.Tool),
		handlers: make(map[string]ToolHandler),
		searcher: searcher,
		config:   cfg,
		logger:   logger,
	}
}

// RegisterLocal registers a tool with a local execution handler.
// Registering an existing tool ID replaces it.
func (r *Registry) RegisterLocal(tool model.Tool, handler ToolHandler) error {
	if err := tool.Validate(); err != nil {
		return fmt.Errorf("invalid tool: %w", err)
	}
	if handler == nil {
		return fmt.Errorf("%w: nil handler for %s", ErrInvalidRequest, tool.ToolID())
	}

	id := tool.ToolID()

	r.mu.Lock()
	if _, exists := r.tools[id]; !exists {
		r.order = append(r.order, id)
	}
	r.tools[id] = tool
	r.handlers[id] = handler
	r.mu.Unlock()

	return nil
}

// RegisterLocalFunc is a convenience for inline tool definition.
func (r *Registry) RegisterLocalFunc(
	name, description string,
	inputSchema map[string]any,
	handler ToolHandler,
	opts ...LocalToolOption,
) error {
	cfg := applyLocalToolOptions(opts)
	tool := buildLocalTool(name, description, inputSchema, cfg)
	return r.RegisterLocal(tool, handler)
}

// Search performs a BM25 search and returns ranked tools.
func (r *Registry) Search(ctx context.Context, query string, limit int) ([]model.Tool, error) {
	r.mu.RLock()
	docs := make([]semantic.Document, 0, len(r.order))
	for _, id := range r.order {
		docs = append(docs, toolDocument(id, r.tools[id]))
	}
	r.mu.RUnlock()

	hits, err := r.searcher.Search(query, limit, docs)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := make([]model.Tool, 0, len(hits))
	for _, hit := range hits {
		if tool, ok := r.tools[hit.ID]; ok {
			tools = append(tools, tool)
		}
	}
	return tools, nil
}

func toolDocument(id string, tool model.Tool) semantic.Document {
	return semantic.Document{
		ID:          id,
		Name:        tool.Name,
		Description: tool.Description,
		Tags:        tool.Tags,
	}
}

// ListAll returns all registered tools in registration order.
func (r *Registry) ListAll(ctx context.Context) ([]model.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]model.Tool, 0, len(r.order))
	for _, id := range r.order {
		tools = append(tools, r.tools[id])
	}
	return tools, nil
}

// GetTool returns a tool by ID. A bare tool name is accepted when it is
// unambiguous.
func (r *Registry) GetTool(ctx context.Context, id string) (model.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolved, ok := r.resolveLocked(id)
	if !ok {
		return model.Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	return r.tools[resolved], nil
}

func (r *Registry) resolveLocked(id string) (string, bool) {
	if _, ok := r.tools[id]; ok {
		return id, true
	}
	if strings.Contains(id, ":") {
		return "", false
	}
	match := ""
	for _, candidate := range r.order {
		if r.tools[candidate].Name != id {
			continue
		}
		if match != "" {
			return "", false
		}
		match = candidate
	}
	return match, match != ""
}

// Execute runs a tool by ID with the given arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mu.RLock()
	id, ok := r.resolveLocked(name)
	handler := r.handlers[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: %s", ErrHandlerNotFound, id)
	}

	r.logger.Debug("tool call", zap.String("tool", id))
	result, err := handler(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExecutionFailed, id, err)
	}
	return result, nil
}

// Start marks the registry as serving.
func (r *Registry) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return ErrAlreadyStarted
	}
	r.started = true
	return nil
}

// Stop marks the registry as stopped and releases its search index.
func (r *Registry) Stop() error {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return nil
	}
	r.started = false
	r.mu.Unlock()

	return r.searcher.Close()
}

// RegistryStats returns registry statistics.
type RegistryStats struct {
	TotalTools int
	Namespaces []string
}

// Stats returns registry statistics.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var namespaces []string
	for _, id := range r.order {
		ns := r.tools[id].Namespace
		if ns != "" && !seen[ns] {
			seen[ns] = true
			namespaces = append(namespaces, ns)
		}
	}

	return RegistryStats{
		TotalTools: len(r.order),
		Namespaces: namespaces,
	}
}

// HealthCheck returns nil if the registry is healthy.
func (r *Registry) HealthCheck(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.started {
		return ErrNotStarted
	}
	return nil
}
