package config

import (
	"context"
	"sync"
)

// resolverKey is the context key for Resolver
type resolverKey struct{}

// Resolver provides lazy per-repo config resolution with caching.
// It loads and merges per-repo .hooksmith.toml files with the global config
// on demand.
type Resolver struct {
	global *Config

	mu    sync.Mutex
	cache map[string]*Config // repoPath -> merged config
}

// NewResolver creates a new Resolver backed by the given global config.
func NewResolver(global *Config) *Resolver {
	return &Resolver{
		global: global,
		cache:  make(map[string]*Config),
	}
}

// ConfigForRepo returns the effective config for a repo, merging any
// .hooksmith.toml found at the repo root with the global config. Results are
// cached per repoPath.
func (r *Resolver) ConfigForRepo(repoPath string) (*Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[repoPath]; ok {
		return cached, nil
	}

	local, err := LoadLocal(repoPath)
	if err != nil {
		return nil, err
	}

	merged := MergeLocal(r.global, local)
	r.cache[repoPath] = merged
	return merged, nil
}

// Global returns the global config (without any local overrides).
func (r *Resolver) Global() *Config {
	return r.global
}

// WithResolver returns a new context with the Resolver stored in it.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, resolverKey{}, r)
}

// ResolverFromContext returns the Resolver from context.
// Returns nil if no resolver is stored.
func ResolverFromContext(ctx context.Context) *Resolver {
	if r, ok := ctx.Value(resolverKey{}).(*Resolver); ok {
		return r
	}
	return nil
}
