package config

import (
	"time"

	"github.com/alexisbeaulieu97/skyui/internal/design"
	"github.com/alexisbeaulieu97/skyui/internal/linkmeta"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "skyui.yaml"

// Config represents the full skyui configuration document.
type Config struct {
	Mode      string         `yaml:"mode" validate:"omitempty,mode"`
	CellWidth int            `yaml:"cell_width" validate:"min=1,max=64"`
	Log       LogConfig      `yaml:"log"`
	Theme     ThemeConfig    `yaml:"theme"`
	Lightbox  LightboxConfig `yaml:"lightbox"`
	LinkMeta  LinkMetaConfig `yaml:"linkmeta"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human"`
}

// ThemeConfig overrides individual tokens, aliases and breakpoints of the
// selected built-in theme.
type ThemeConfig struct {
	Colors       map[string]string   `yaml:"colors" validate:"dive,keys,required,endkeys,hexcolor"`
	Space        map[string]float64  `yaml:"space" validate:"dive,keys,required,endkeys,min=0"`
	FontSizes    map[string]float64  `yaml:"font_sizes" validate:"dive,keys,required,endkeys,gt=0"`
	LineHeights  map[string]float64  `yaml:"line_heights" validate:"dive,keys,required,endkeys,gt=0"`
	FontFamilies map[string]string   `yaml:"font_families" validate:"dive,keys,required,endkeys,required"`
	Properties   map[string][]string `yaml:"properties" validate:"dive,keys,alias_name,endkeys,min=1,dive,required"`
	Breakpoints  map[string]float64  `yaml:"breakpoints" validate:"dive,keys,breakpoint_name,endkeys,gt=0"`
}

// LightboxConfig holds viewer presentation options.
type LightboxConfig struct {
	Background string `yaml:"background" validate:"omitempty,hexcolor"`
}

// LinkMetaConfig tunes link metadata retrieval.
type LinkMetaConfig struct {
	Timeout   time.Duration `yaml:"timeout" validate:"min=0"`
	Retries   int           `yaml:"retries" validate:"min=0,max=10"`
	UserAgent string        `yaml:"user_agent"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Mode:      string(design.ModeLight),
		CellWidth: design.DefaultCellWidth,
		Log:       LogConfig{Level: "info"},
		LinkMeta: LinkMetaConfig{
			Timeout:   linkmeta.DefaultTimeout,
			Retries:   linkmeta.DefaultRetries,
			UserAgent: linkmeta.DefaultUserAgent,
		},
	}
}

// IsZero reports whether the theme section overrides nothing.
func (t ThemeConfig) IsZero() bool {
	return len(t.Colors) == 0 && len(t.Space) == 0 && len(t.FontSizes) == 0 &&
		len(t.LineHeights) == 0 && len(t.FontFamilies) == 0 &&
		len(t.Properties) == 0 && len(t.Breakpoints) == 0
}

// Overrides converts the section into a design configuration fragment.
func (t ThemeConfig) Overrides() design.Config {
	cfg := design.Config{
		Tokens:      design.Tokens{},
		Properties:  make(map[string][]string, len(t.Properties)),
		Breakpoints: make(map[string]float64, len(t.Breakpoints)),
	}

	addStrings := func(category design.Category, values map[string]string) {
		if len(values) == 0 {
			return
		}
		dst := make(map[string]any, len(values))
		for k, v := range values {
			dst[k] = v
		}
		cfg.Tokens[category] = dst
	}
	addNumbers := func(category design.Category, values map[string]float64) {
		if len(values) == 0 {
			return
		}
		dst := make(map[string]any, len(values))
		for k, v := range values {
			dst[k] = v
		}
		cfg.Tokens[category] = dst
	}

	addStrings(design.CategoryColor, t.Colors)
	addNumbers(design.CategorySpace, t.Space)
	addNumbers(design.CategoryFontSize, t.FontSizes)
	addNumbers(design.CategoryLineHeight, t.LineHeights)
	addStrings(design.CategoryFontFamily, t.FontFamilies)

	for alias, names := range t.Properties {
		cfg.Properties[alias] = append([]string(nil), names...)
	}
	for name, width := range t.Breakpoints {
		cfg.Breakpoints[name] = width
	}
	return cfg
}

// BuildTheme selects the theme for the configured mode and applies the
// theme overrides on top of it.
func (c *Config) BuildTheme() (*design.Theme, error) {
	mode, err := design.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	base, err := design.ForMode(mode)
	if err != nil {
		return nil, err
	}
	if c.Theme.IsZero() {
		return base, nil
	}
	return base.Merge(base.Name()+"+config", c.Theme.Overrides())
}

// FetcherOptions converts the linkmeta section into fetcher options.
func (c *Config) FetcherOptions() linkmeta.Options {
	return linkmeta.Options{
		Timeout:   c.LinkMeta.Timeout,
		Retries:   c.LinkMeta.Retries,
		UserAgent: c.LinkMeta.UserAgent,
	}
}
