package embed

import (
	"encoding/json"
	"fmt"
	"os"

	skyerrors "github.com/alexisbeaulieu97/skyui/pkg/errors"
)

// Discriminators of the embed variants this package understands.
const (
	TypeImages   = "app.bsky.embed.images#presented"
	TypeExternal = "app.bsky.embed.external#presented"
)

// MaxImages is the largest image set that has a layout.
const MaxImages = 4

// Embed is rich content attached to a post. The concrete type is one of
// ImageSet, ExternalLink or Unknown.
type Embed interface {
	Type() string
	isEmbed()
}

// Image is one entry of an image set.
type Image struct {
	Thumb    string `json:"thumb"`
	FullSize string `json:"fullsize"`
	Alt      string `json:"alt,omitempty"`
}

// ImageSet embeds a small gallery of images.
type ImageSet struct {
	Images []Image `json:"images"`
}

// Type implements Embed.
func (ImageSet) Type() string { return TypeImages }
func (ImageSet) isEmbed()     {}

// ExternalLink embeds a link card.
type ExternalLink struct {
	URI         string `json:"uri"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Thumb       string `json:"thumb,omitempty"`
}

// Type implements Embed.
func (ExternalLink) Type() string { return TypeExternal }
func (ExternalLink) isEmbed()     {}

// Unknown carries a payload whose discriminator is not recognised, so that
// newer schemas survive a round trip.
type Unknown struct {
	Tag string
	Raw json.RawMessage
}

// Type implements Embed.
func (u Unknown) Type() string { return u.Tag }
func (Unknown) isEmbed()       {}

type envelope struct {
	Type     string          `json:"$type"`
	Images   []Image         `json:"images"`
	External json.RawMessage `json:"external"`
}

// Decode parses a tagged embed payload. Unrecognised tags decode to Unknown;
// only malformed JSON is an error.
func Decode(data []byte) (Embed, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	switch env.Type {
	case TypeImages:
		return ImageSet{Images: env.Images}, nil
	case TypeExternal:
		var link ExternalLink
		if len(env.External) > 0 {
			if err := json.Unmarshal(env.External, &link); err != nil {
				return nil, fmt.Errorf("decode external: %w", err)
			}
		}
		return link, nil
	default:
		raw := make(json.RawMessage, len(data))
		copy(raw, data)
		return Unknown{Tag: env.Type, Raw: raw}, nil
	}
}

// Load reads and decodes an embed payload from disk.
func Load(path string) (Embed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, skyerrors.NewParseError(path, 0, err)
	}
	e, err := Decode(data)
	if err != nil {
		return nil, skyerrors.NewParseError(path, 0, err)
	}
	return e, nil
}

// Encode serialises an embed back into its tagged form.
func Encode(e Embed) ([]byte, error) {
	switch v := e.(type) {
	case ImageSet:
		return json.Marshal(struct {
			Type   string  `json:"$type"`
			Images []Image `json:"images"`
		}{Type: TypeImages, Images: v.Images})
	case ExternalLink:
		return json.Marshal(struct {
			Type     string       `json:"$type"`
			External ExternalLink `json:"external"`
		}{Type: TypeExternal, External: v})
	case Unknown:
		return append([]byte(nil), v.Raw...), nil
	default:
		return nil, fmt.Errorf("unsupported embed %T", e)
	}
}
