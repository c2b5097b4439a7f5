package linkmeta

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/alexisbeaulieu97/skyui/internal/logger"
	skyerrors "github.com/alexisbeaulieu97/skyui/pkg/errors"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRetries   = 2
	DefaultUserAgent = "skyui-linkmeta/1.0"
)

// Options configures a Fetcher.
type Options struct {
	Timeout   time.Duration
	Retries   int
	UserAgent string
	Logger    *logger.Logger
}

// Fetcher retrieves link metadata over HTTP.
type Fetcher struct {
	client *resty.Client
	log    *logger.Logger
}

// NewFetcher builds a Fetcher. An unset timeout or user agent takes the
// package default.
func NewFetcher(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	c := resty.New()
	c.SetTimeout(opts.Timeout)
	c.SetRetryCount(opts.Retries)
	c.SetRetryWaitTime(250 * time.Millisecond)
	c.SetRetryMaxWaitTime(2 * time.Second)
	c.AddRetryCondition(func(r *resty.Response, err error) bool {
		return err != nil || (r != nil && r.StatusCode() >= 500)
	})
	c.SetHeader("User-Agent", opts.UserAgent)
	c.SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	return &Fetcher{client: c, log: opts.Logger}
}

// Fetch returns metadata for rawURL. Only HTML pages are downloaded; other
// types come back with just the URL and its likely type.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Meta, error) {
	meta := Meta{URL: rawURL, Type: GuessType(rawURL)}
	if meta.Type != TypeHTML {
		f.log.With("url", rawURL).Debug("skipping non-html link")
		return meta, nil
	}

	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return meta, skyerrors.NewFetchError(rawURL, 0, err)
	}
	if resp.IsError() {
		return meta, skyerrors.NewFetchError(rawURL, resp.StatusCode(), nil)
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "html") {
		f.log.WithFields(map[string]any{"url": rawURL, "contentType": contentType}).Debug("response is not html")
		return meta, nil
	}

	base := rawURL
	if final := resp.RawResponse; final != nil && final.Request != nil && final.Request.URL != nil {
		base = final.Request.URL.String()
	}

	parsed, err := Parse(bytes.NewReader(resp.Body()), base)
	if err != nil {
		return meta, skyerrors.NewFetchError(rawURL, resp.StatusCode(), err)
	}
	parsed.URL = rawURL
	parsed.Type = meta.Type

	f.log.WithFields(map[string]any{"url": rawURL, "title": parsed.Title}).Debug("fetched link metadata")
	return parsed, nil
}

// Parse extracts preview metadata from an HTML document. Relative image
// URLs are resolved against pageURL.
func Parse(r io.Reader, pageURL string) (Meta, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Meta{}, fmt.Errorf("parse html: %w", err)
	}

	meta := Meta{URL: pageURL, Type: TypeHTML}
	meta.Title = firstNonEmpty(
		metaContent(doc, "og:title"),
		metaContent(doc, "twitter:title"),
		strings.TrimSpace(doc.Find("title").First().Text()),
	)
	meta.Description = firstNonEmpty(
		metaContent(doc, "og:description"),
		metaContent(doc, "twitter:description"),
		metaContent(doc, "description"),
	)
	if img := firstNonEmpty(metaContent(doc, "og:image"), metaContent(doc, "twitter:image")); img != "" {
		meta.Image = resolve(pageURL, img)
	}
	return meta, nil
}

// metaContent reads a <meta> tag keyed by either property or name.
func metaContent(doc *goquery.Document, key string) string {
	var out string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		prop, _ := s.Attr("property")
		name, _ := s.Attr("name")
		if !strings.EqualFold(prop, key) && !strings.EqualFold(name, key) {
			return true
		}
		content, _ := s.Attr("content")
		out = strings.TrimSpace(content)
		return out == ""
	})
	return out
}

func resolve(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
