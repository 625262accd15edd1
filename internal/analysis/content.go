package analysis

import (
	"sort"
	"strings"
)

const blockImage = "image"

// ContentBlock is one entry of the tool-server content view.
type ContentBlock struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
	Title    string    `json:"title,omitempty"`
}

// ImageURL wraps an inline data URL.
type ImageURL struct {
	URL string `json:"url"`
}

// Content returns the summaries followed by one image block per plot, keys in
// sorted order. An image's title is its key with the first underscore turned
// into a space.
func (r *Report) Content() []ContentBlock {
	out := make([]ContentBlock, 0, len(r.Summaries)+len(r.Plots))
	for _, s := range r.Summaries {
		out = append(out, ContentBlock{Type: s.Type, Text: s.Text})
	}
	keys := make([]string, 0, len(r.Plots))
	for k := range r.Plots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, ContentBlock{
			Type:     blockImage,
			ImageURL: &ImageURL{URL: "data:image/png;base64," + r.Plots[k]},
			Title:    strings.Replace(k, "_", " ", 1),
		})
	}
	return out
}
