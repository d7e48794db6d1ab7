// ABOUTME: Source domain model describes a named remote feed endpoint
// ABOUTME: Provides case-insensitive lookup over a registry of sources

package domain

import (
	"errors"
	"net/url"
	"strings"
)

// Source is a static descriptor of a remote feed
type Source struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Validate checks the source has a name and an absolute feed URL
func (s Source) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("source name cannot be empty")
	}
	u, err := url.Parse(s.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("source URL is not valid format")
	}
	return nil
}

// SelectSources resolves names against the registry by case-insensitive exact match.
// An empty name list selects the whole registry. Registry order is preserved and
// unknown names select nothing.
func SelectSources(registry []Source, names []string) []Source {
	if len(names) == 0 {
		out := make([]Source, len(registry))
		copy(out, registry)
		return out
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			wanted[n] = struct{}{}
		}
	}

	out := make([]Source, 0, len(wanted))
	for _, src := range registry {
		if _, ok := wanted[strings.ToLower(src.Name)]; ok {
			out = append(out, src)
		}
	}
	return out
}
