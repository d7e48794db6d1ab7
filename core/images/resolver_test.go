package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_EnclosureWins(t *testing.T) {
	m := Media{
		EnclosureURL: "https://cdn.example.com/enclosure.jpg",
		Contents:     []Candidate{{URL: "https://cdn.example.com/content.jpg", Width: 2000, Height: 1000}},
		ContentHTML:  `<img src="https://cdn.example.com/inline.jpg">`,
	}

	assert.Equal(t, "https://cdn.example.com/enclosure.jpg", Resolve(m))
}

func TestResolve_LargestMediaContent(t *testing.T) {
	m := Media{
		Contents: []Candidate{
			{URL: "a.jpg", Width: 100, Height: 100},
			{URL: "b.jpg", Width: 400, Height: 300},
		},
	}
	assert.Equal(t, "b.jpg", Resolve(m))

	m.Contents[0], m.Contents[1] = m.Contents[1], m.Contents[0]
	assert.Equal(t, "b.jpg", Resolve(m), "larger area wins regardless of order")
}

func TestResolve_ThumbnailAfterContent(t *testing.T) {
	m := Media{
		Thumbnails: []Candidate{
			{URL: "https://cdn.example.com/t-small.jpg", Width: 50, Height: 50},
			{URL: "https://cdn.example.com/t-large.jpg", Width: 150, Height: 150},
		},
	}
	assert.Equal(t, "https://cdn.example.com/t-large.jpg", Resolve(m))

	m.Contents = []Candidate{{URL: "https://cdn.example.com/content.jpg"}}
	assert.Equal(t, "https://cdn.example.com/content.jpg", Resolve(m), "media content outranks thumbnails")
}

func TestResolve_SrcsetBeforeInlineImage(t *testing.T) {
	m := Media{
		ContentHTML: `<p>Intro</p><img src="https://cdn.example.com/small.jpg" srcset="https://cdn.example.com/480.jpg 480w, https://cdn.example.com/1200.jpg 1200w, https://cdn.example.com/800.jpg 800w">`,
	}
	assert.Equal(t, "https://cdn.example.com/1200.jpg", Resolve(m))
}

func TestResolve_FirstInlineImage(t *testing.T) {
	m := Media{
		RawHTML:     `<p>No pictures here</p>`,
		ContentHTML: `<div><img alt="x"><img src="//cdn.example.com/first.jpg"><img src="https://cdn.example.com/second.jpg"></div>`,
	}
	assert.Equal(t, "https://cdn.example.com/first.jpg", Resolve(m))
}

func TestResolve_RawHTMLScannedFirst(t *testing.T) {
	m := Media{
		RawHTML:     `<img src="https://cdn.example.com/raw.jpg">`,
		ContentHTML: `<img src="https://cdn.example.com/rich.jpg">`,
	}
	assert.Equal(t, "https://cdn.example.com/raw.jpg", Resolve(m))
}

func TestResolve_NothingFound(t *testing.T) {
	assert.Equal(t, "", Resolve(Media{}))
	assert.Equal(t, "", Resolve(Media{RawHTML: "plain text", ContentHTML: "<p>text</p>"}))
}

func TestResolve_ProtocolRelative(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/e.jpg", Resolve(Media{EnclosureURL: "//cdn.example.com/e.jpg"}))
	assert.Equal(t, "https://cdn.example.com/c.jpg", Resolve(Media{Contents: []Candidate{{URL: "//cdn.example.com/c.jpg"}}}))
}

func TestLargest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		expected   string
	}{
		{"empty", nil, ""},
		{"skips blank urls", []Candidate{{URL: " ", Width: 900, Height: 900}, {URL: "a.jpg"}}, "a.jpg"},
		{"zero area loses to sized", []Candidate{{URL: "a.jpg"}, {URL: "b.jpg", Width: 10, Height: 10}}, "b.jpg"},
		{"ties keep first", []Candidate{{URL: "a.jpg", Width: 20, Height: 10}, {URL: "b.jpg", Width: 10, Height: 20}}, "a.jpg"},
		{"all unsized keeps first", []Candidate{{URL: "a.jpg"}, {URL: "b.jpg"}}, "a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Largest(tt.candidates))
		})
	}
}

func TestBestFromSrcset(t *testing.T) {
	tests := []struct {
		name     string
		srcset   string
		expected string
	}{
		{"widest wins", "a.jpg 320w, b.jpg 1024w, c.jpg 640w", "b.jpg"},
		{"missing widths count as zero", "a.jpg, b.jpg 2x, c.jpg 10w", "c.jpg"},
		{"no widths keeps first", "a.jpg 1x, b.jpg 2x", "a.jpg"},
		{"empty", "", ""},
		{"extra whitespace", "  a.jpg   100w ,\n b.jpg 200w ", "b.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BestFromSrcset(tt.srcset))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a.jpg", NormalizeURL("//cdn.example.com/a.jpg"))
	assert.Equal(t, "http://cdn.example.com/a.jpg", NormalizeURL(" http://cdn.example.com/a.jpg "))
	assert.Equal(t, "", NormalizeURL(""))
}
