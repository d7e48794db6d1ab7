package aggregator

import "strings"

const (
	DefaultPerSourceLimit = 12
	MaxPerSourceLimit     = 50
	DefaultTotalLimit     = 100
	MaxTotalLimit         = 200
)

// Options selects and shapes one aggregation
type Options struct {
	// SourceNames restricts the fetch to these sources (case-insensitive); empty means all
	SourceNames []string

	// Query keeps only items whose title or source contains it (case-insensitive)
	Query string

	// PerSourceLimit caps items taken from each feed; 0 means the default
	PerSourceLimit int

	// TotalLimit caps the final list; 0 means the default
	TotalLimit int

	// ForceFresh skips the snapshot read
	ForceFresh bool

	// UpgradeImages enables the hi-res image pass
	UpgradeImages bool
}

// Normalized returns a copy with limits defaulted and clamped to their ranges
// and blank source names removed. The query is matched verbatim, so
// surrounding whitespace is significant.
func (o Options) Normalized() Options {
	out := o
	out.PerSourceLimit = clamp(o.PerSourceLimit, DefaultPerSourceLimit, MaxPerSourceLimit)
	out.TotalLimit = clamp(o.TotalLimit, DefaultTotalLimit, MaxTotalLimit)

	out.SourceNames = nil
	for _, name := range o.SourceNames {
		if name = strings.TrimSpace(name); name != "" {
			out.SourceNames = append(out.SourceNames, name)
		}
	}
	return out
}

// IsConditioned reports whether the request may not be served from, or
// written to, the snapshot.
func (o Options) IsConditioned() bool {
	return len(o.SourceNames) > 0 || o.Query != "" || o.ForceFresh || o.UpgradeImages
}

func clamp(v, def, max int) int {
	switch {
	case v == 0:
		return def
	case v < 1:
		return 1
	case v > max:
		return max
	default:
		return v
	}
}
