package gcp

import (
	"context"
	"fmt"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// ProjectLookupFunc fetches the project ID for a numeric project identifier
// from the resource manager API.
type ProjectLookupFunc func(ctx context.Context, projectNumber string) (string, error)

type resolvedProject struct {
	id string
	ok bool
}

// ProjectIDCache memoizes project-number to project-ID lookups for the
// lifetime of one command invocation. Each distinct number triggers at most
// one external lookup; failures are cached as unresolved so they are not
// retried, and callers get the raw number back as a display fallback. The
// mutex serializes insert-if-absent so the one-lookup guarantee holds even if
// callers ever resolve from multiple goroutines.
type ProjectIDCache struct {
	mu       sync.Mutex
	lookup   ProjectLookupFunc
	store    *gocache.Cache
	failures []string
}

func NewProjectIDCache(lookup ProjectLookupFunc) *ProjectIDCache {
	return &ProjectIDCache{
		lookup: lookup,
		store:  gocache.New(gocache.NoExpiration, 0),
	}
}

// Resolve returns the project ID for a project number, or the number itself
// when it cannot be resolved.
func (c *ProjectIDCache) Resolve(ctx context.Context, projectNumber string) string {
	if projectNumber == "" {
		return ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, found := c.store.Get(projectNumber); found {
		entry := cached.(resolvedProject)
		if entry.ok {
			return entry.id
		}
		return projectNumber
	}

	id, err := c.lookup(ctx, projectNumber)
	if err != nil {
		c.store.Set(projectNumber, resolvedProject{}, gocache.NoExpiration)
		c.failures = append(c.failures, fmt.Sprintf("%s: %v", projectNumber, err))
		return projectNumber
	}

	c.store.Set(projectNumber, resolvedProject{id: id, ok: true}, gocache.NoExpiration)
	return id
}

// Failures lists the lookups that failed during this invocation, one entry
// per distinct project number.
func (c *ProjectIDCache) Failures() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.failures...)
}
