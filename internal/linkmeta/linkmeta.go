// Package linkmeta classifies links and extracts preview metadata from web
// pages for external link cards.
package linkmeta

import (
	"net/url"
	"path"
	"strings"

	"github.com/alexisbeaulieu97/skyui/internal/embed"
)

// LikelyType is a guess at what a URL points to, based on its extension.
type LikelyType string

const (
	TypeHTML  LikelyType = "html"
	TypeImage LikelyType = "image"
	TypeVideo LikelyType = "video"
	TypeAudio LikelyType = "audio"
	TypeText  LikelyType = "text"
	TypeOther LikelyType = "other"
)

var extensions = map[string]LikelyType{
	"":      TypeHTML,
	".html": TypeHTML,
	".htm":  TypeHTML,
	".php":  TypeHTML,
	".asp":  TypeHTML,
	".aspx": TypeHTML,
	".png":  TypeImage,
	".jpg":  TypeImage,
	".jpeg": TypeImage,
	".gif":  TypeImage,
	".webp": TypeImage,
	".svg":  TypeImage,
	".bmp":  TypeImage,
	".avif": TypeImage,
	".mp4":  TypeVideo,
	".webm": TypeVideo,
	".mov":  TypeVideo,
	".mkv":  TypeVideo,
	".avi":  TypeVideo,
	".mp3":  TypeAudio,
	".wav":  TypeAudio,
	".ogg":  TypeAudio,
	".flac": TypeAudio,
	".m4a":  TypeAudio,
	".txt":  TypeText,
	".md":   TypeText,
	".csv":  TypeText,
	".json": TypeText,
}

// GuessType classifies rawURL by the extension of its path. Anything that
// does not parse as an http(s) URL is TypeOther.
func GuessType(rawURL string) LikelyType {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return TypeOther
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if t, ok := extensions[ext]; ok {
		return t
	}
	return TypeOther
}

// Meta is preview metadata for a link.
type Meta struct {
	URL         string     `json:"url" yaml:"url"`
	Type        LikelyType `json:"likelyType" yaml:"likelyType"`
	Title       string     `json:"title,omitempty" yaml:"title,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string     `json:"image,omitempty" yaml:"image,omitempty"`
}

// Embed converts the metadata into an external link embed.
func (m Meta) Embed() embed.ExternalLink {
	link := embed.ExternalLink{
		URI:         m.URL,
		Title:       m.Title,
		Description: m.Description,
		Thumb:       m.Image,
	}
	if m.Type == TypeImage && link.Thumb == "" {
		link.Thumb = m.URL
	}
	return link
}
