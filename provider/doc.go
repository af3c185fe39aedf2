// Package provider is a registry of named embedder factories.
//
// The CLI resolves the configured embedder name through a [Store]:
//
//	emb, err := provider.Embedder(provider.Default(), "mock", 512)
//
// [Default] registers the deterministic mock embedder under [MockName].
// Additional providers can be registered at startup. All store methods are
// safe for concurrent use.
package provider
