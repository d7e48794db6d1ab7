package images

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	lowQualityMarkers = []string{"thumb", "icon", "avatar"}

	// a WxH segment where both sides have 1-3 digits, e.g. "-64x64."
	smallDimensionPattern = regexp.MustCompile(`(?:^|\D)\d{1,3}x\d{1,3}(?:\D|$)`)
	smallWidthPattern     = regexp.MustCompile(`^\d{1,3}$`)
)

// IsLowQuality reports whether an image URL looks like a thumbnail, icon or
// other small rendition that is worth replacing with a scraped image.
// Only the path and query are inspected; the host is ignored.
func IsLowQuality(imageURL string) bool {
	imageURL = NormalizeURL(imageURL)
	if imageURL == "" {
		return false
	}

	target := imageURL
	var query url.Values
	if u, err := url.Parse(imageURL); err == nil {
		target = u.Path
		if u.RawQuery != "" {
			target += "?" + u.RawQuery
		}
		query = u.Query()
	}

	lower := strings.ToLower(target)
	for _, marker := range lowQualityMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	if smallDimensionPattern.MatchString(lower) {
		return true
	}

	for _, key := range []string{"width", "w"} {
		if smallWidthPattern.MatchString(query.Get(key)) {
			return true
		}
	}

	return false
}
