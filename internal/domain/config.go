package domain

import (
	"fmt"
	"strings"

	"anostudio/internal/catalog"
)

// Mode selects which photography workflow a session runs. Marketing and
// food share the product prompt template; portrait uses its own.
type Mode string

const (
	ModeMarketing Mode = "marketing"
	ModeFood      Mode = "food"
	ModePortrait  Mode = "portrait"
)

// ValidMode reports whether m is one of the supported modes.
func ValidMode(m Mode) bool {
	switch m {
	case ModeMarketing, ModeFood, ModePortrait:
		return true
	}
	return false
}

// GenerationConfig holds every knob that shapes a photography prompt. Style
// fields hold option ids from the catalog; BackgroundStyle may also hold the
// "other" sentinel, in which case CustomBackgroundStyle carries the user's
// free text.
type GenerationConfig struct {
	PhotoType             catalog.ProductType `json:"photoType"`
	ProductName           string              `json:"productName,omitempty"`
	AngleStyle            string              `json:"angleStyle"`
	LightingStyle         string              `json:"lightingStyle"`
	StylingStyle          string              `json:"stylingStyle"`
	OutfitStyle           string              `json:"outfitStyle,omitempty"`
	BackgroundStyle       string              `json:"backgroundStyle"`
	CustomBackgroundStyle string              `json:"customBackgroundStyle,omitempty"`
	ExtraInstructions     string              `json:"extraInstructions,omitempty"`
	WithWatermark         bool                `json:"withWatermark"`
	CustomWatermarkText   string              `json:"customWatermarkText,omitempty"`
}

// DefaultConfigFor builds a config for the given product type with every
// style axis set to the first option of its category list. The lists lead
// with the random sentinel, so a fresh config asks the model to improvise
// until the user picks something. The watermark toggle follows the caller's
// app settings, so it is left false here.
func DefaultConfigFor(pt catalog.ProductType) GenerationConfig {
	cfg := GenerationConfig{PhotoType: pt}
	cfg.resetStyles()
	return cfg
}

// SetPhotoType switches the product type and atomically resets every style
// axis to the new category's defaults. Partial carry-over of old option ids
// would leave the config pointing at options the category does not have.
func (c *GenerationConfig) SetPhotoType(pt catalog.ProductType) {
	c.PhotoType = pt
	c.resetStyles()
}

func (c *GenerationConfig) resetStyles() {
	set := catalog.OptionsFor(catalog.CategoryOf(c.PhotoType))
	c.AngleStyle = firstOption(set.Angles)
	c.LightingStyle = firstOption(set.Lighting)
	c.StylingStyle = firstOption(set.Styling)
	c.BackgroundStyle = firstOption(set.Backgrounds)
	c.CustomBackgroundStyle = ""
	if len(set.Outfits) > 0 {
		c.OutfitStyle = firstOption(set.Outfits)
	} else {
		c.OutfitStyle = ""
	}
}

func firstOption(options []catalog.StyleOption) string {
	if len(options) == 0 {
		return ""
	}
	return options[0].ID
}

// Validate checks that every style axis holds an id known to the config's
// category. The random sentinel is valid everywhere; "other" only for
// backgrounds.
func (c GenerationConfig) Validate() error {
	if !catalog.KnownProductType(c.PhotoType) {
		return fmt.Errorf("unknown product type %q", c.PhotoType)
	}
	set := catalog.OptionsFor(catalog.CategoryOf(c.PhotoType))
	checks := []struct {
		field string
		id    string
		opts  []catalog.StyleOption
	}{
		{"angleStyle", c.AngleStyle, set.Angles},
		{"lightingStyle", c.LightingStyle, set.Lighting},
		{"stylingStyle", c.StylingStyle, set.Styling},
		{"backgroundStyle", c.BackgroundStyle, set.Backgrounds},
	}
	if len(set.Outfits) > 0 && c.OutfitStyle != "" {
		checks = append(checks, struct {
			field string
			id    string
			opts  []catalog.StyleOption
		}{"outfitStyle", c.OutfitStyle, set.Outfits})
	}
	for _, chk := range checks {
		if chk.id == "" {
			continue
		}
		if !optionKnown(chk.id, chk.opts) {
			return fmt.Errorf("%s: unknown option %q", chk.field, chk.id)
		}
	}
	return nil
}

func optionKnown(id string, options []catalog.StyleOption) bool {
	for _, opt := range options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// PosterConfig holds the poster designer inputs. Theme, palette and font
// hold catalog option ids; the text fields are verbatim user copy.
type PosterConfig struct {
	ProductName  string `json:"productName,omitempty"`
	Theme        string `json:"theme"`
	ColorPalette string `json:"colorPalette"`
	FontStyle    string `json:"fontStyle"`
	Headline     string `json:"headline"`
	BodyText     string `json:"bodyText,omitempty"`
	CTA          string `json:"cta,omitempty"`
}

// DefaultPosterConfig returns a poster config with the first theme and font
// and the automatic color palette selected.
func DefaultPosterConfig() PosterConfig {
	return PosterConfig{
		Theme:        "minimalist-clean",
		ColorPalette: "auto",
		FontStyle:    "sans-serif-modern",
	}
}

// Validate checks the poster style ids and requires a non-blank headline,
// which the prompt rules treat as mandatory copy.
func (c PosterConfig) Validate() error {
	if strings.TrimSpace(c.Headline) == "" {
		return ErrMissingHeadline
	}
	if !optionKnown(c.Theme, catalog.PosterThemes()) {
		return fmt.Errorf("theme: unknown option %q", c.Theme)
	}
	if !optionKnown(c.ColorPalette, catalog.ColorPalettes()) {
		return fmt.Errorf("colorPalette: unknown option %q", c.ColorPalette)
	}
	if !optionKnown(c.FontStyle, catalog.FontStyles()) {
		return fmt.Errorf("fontStyle: unknown option %q", c.FontStyle)
	}
	return nil
}

// AppSettings are the persisted per-install preferences.
type AppSettings struct {
	Theme            string `json:"theme"`
	Language         string `json:"language"`
	NumberOfResults  int    `json:"numberOfResults"`
	DefaultWatermark bool   `json:"defaultWatermark"`
}

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() AppSettings {
	return AppSettings{Theme: "dark", Language: "id", NumberOfResults: 4}
}

// Normalize clamps free-form settings values to the supported sets.
func (s AppSettings) Normalize() AppSettings {
	if s.Theme != "light" && s.Theme != "dark" {
		s.Theme = "dark"
	}
	if s.Language != "id" && s.Language != "en" {
		s.Language = "id"
	}
	switch s.NumberOfResults {
	case 2, 4, 6:
	default:
		s.NumberOfResults = 4
	}
	return s
}
