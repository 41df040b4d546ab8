package ingestors

import (
	"fmt"

	"github.com/gobwas/glob"
)

// EndpointFilter decides whether a record's endpoint belongs in the report.
type EndpointFilter interface {
	Match(endpoint string) bool
}

type matchAll struct{}

func (matchAll) Match(string) bool { return true }

type globEndpointFilter struct {
	globs []glob.Glob
}

// NewEndpointFilter compiles '/'-separated glob patterns ("/api/*", "/static/**").
// An endpoint is kept when it matches any pattern; no patterns keeps everything.
func NewEndpointFilter(patterns []string) (EndpointFilter, error) {
	if len(patterns) == 0 {
		return matchAll{}, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid endpoint pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return &globEndpointFilter{globs: globs}, nil
}

func (f *globEndpointFilter) Match(endpoint string) bool {
	for _, g := range f.globs {
		if g.Match(endpoint) {
			return true
		}
	}
	return false
}
