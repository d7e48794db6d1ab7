// ABOUTME: Source registry loading from YAML with a built-in beverage-trade default list
// ABOUTME: Validates names, URLs and name uniqueness before the pipeline sees them

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"bevtrends-api/core/domain"
)

// DefaultSources is the registry used when no sources file is configured
var DefaultSources = []domain.Source{
	{Name: "Punch", URL: "https://punchdrink.com/feed/"},
	{Name: "VinePair", URL: "https://vinepair.com/feed/"},
	{Name: "Imbibe", URL: "https://imbibemagazine.com/feed/"},
	{Name: "The Spirits Business", URL: "https://www.thespiritsbusiness.com/feed/"},
	{Name: "The Drinks Business", URL: "https://www.thedrinksbusiness.com/feed/"},
	{Name: "Beverage Dynamics", URL: "https://beveragedynamics.com/feed/"},
	{Name: "BevNET", URL: "https://www.bevnet.com/feed"},
}

// sourcesFile is the YAML layout of a registry file
type sourcesFile struct {
	Sources []domain.Source `yaml:"sources"`
}

// LoadSources returns the registry from path, or a copy of DefaultSources when
// path is empty.
//
// File format:
//
//	sources:
//	  - name: Punch
//	    url: https://punchdrink.com/feed/
func LoadSources(path string) ([]domain.Source, error) {
	if path == "" {
		out := make([]domain.Source, len(DefaultSources))
		copy(out, DefaultSources)
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	return ParseSources(data)
}

// ParseSources decodes and validates a YAML registry
func ParseSources(data []byte) ([]domain.Source, error) {
	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("sources file lists no sources")
	}

	seen := make(map[string]struct{}, len(file.Sources))
	sources := make([]domain.Source, 0, len(file.Sources))
	for i, src := range file.Sources {
		src.Name = strings.TrimSpace(src.Name)
		src.URL = strings.TrimSpace(src.URL)
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}

		key := strings.ToLower(src.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("source %d: duplicate name %q", i, src.Name)
		}
		seen[key] = struct{}{}
		sources = append(sources, src)
	}

	return sources, nil
}
