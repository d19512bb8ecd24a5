package assistant

import (
	"strings"

	"anostudio/internal/catalog"
	"anostudio/internal/domain"
)

// ResolutionKind tags the outcome of resolving a model-provided style name
// against a catalog option list.
type ResolutionKind int

const (
	// ResolutionUnmatched leaves the axis as it was.
	ResolutionUnmatched ResolutionKind = iota
	// ResolutionMatched maps the name onto a catalog option id.
	ResolutionMatched
	// ResolutionCustomFallback keeps the raw name as custom free text. Only
	// the background axis supports it.
	ResolutionCustomFallback
)

// Resolution is the outcome of one axis resolution.
type Resolution struct {
	Kind   ResolutionKind
	ID     string
	Custom string
}

func resolveOption(name string, options []catalog.StyleOption) Resolution {
	if strings.TrimSpace(name) == "" {
		return Resolution{Kind: ResolutionUnmatched}
	}
	if id, ok := catalog.FindOptionID(name, options); ok {
		return Resolution{Kind: ResolutionMatched, ID: id}
	}
	return Resolution{Kind: ResolutionUnmatched}
}

func resolveBackground(name string, options []catalog.StyleOption) Resolution {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Resolution{Kind: ResolutionUnmatched}
	}
	if id, ok := catalog.FindOptionID(trimmed, options); ok {
		return Resolution{Kind: ResolutionMatched, ID: id}
	}
	return Resolution{Kind: ResolutionCustomFallback, Custom: trimmed}
}

// ApplyStyleRecommendation merges a recommendation into a config. Names are
// matched case-insensitively against both display languages; an axis whose
// name matches nothing stays untouched, except the background, which falls
// back to custom free text so a creative suggestion is never lost.
func ApplyStyleRecommendation(cfg domain.GenerationConfig, mode domain.Mode, rec domain.StyleRecommendation) domain.GenerationConfig {
	set := catalog.OptionsFor(catalog.CategoryOf(cfg.PhotoType))

	if r := resolveOption(rec.AngleStyle, set.Angles); r.Kind == ResolutionMatched {
		cfg.AngleStyle = r.ID
	}
	if r := resolveOption(rec.LightingStyle, set.Lighting); r.Kind == ResolutionMatched {
		cfg.LightingStyle = r.ID
	}
	if r := resolveOption(rec.StylingStyle, set.Styling); r.Kind == ResolutionMatched {
		cfg.StylingStyle = r.ID
	}
	if mode == domain.ModePortrait {
		if r := resolveOption(rec.OutfitStyle, set.Outfits); r.Kind == ResolutionMatched {
			cfg.OutfitStyle = r.ID
		}
	}
	switch r := resolveBackground(rec.BackgroundStyle, set.Backgrounds); r.Kind {
	case ResolutionMatched:
		cfg.BackgroundStyle = r.ID
		cfg.CustomBackgroundStyle = ""
	case ResolutionCustomFallback:
		cfg.BackgroundStyle = catalog.OptionOther
		cfg.CustomBackgroundStyle = r.Custom
	}
	return cfg
}

// ApplyPosterRecommendation merges a poster recommendation into a poster
// config. Style names resolve against the flat poster catalogs; text fields
// are taken verbatim when non-empty.
func ApplyPosterRecommendation(cfg domain.PosterConfig, rec domain.PosterRecommendation) domain.PosterConfig {
	if r := resolveOption(rec.Theme, catalog.PosterThemes()); r.Kind == ResolutionMatched {
		cfg.Theme = r.ID
	}
	if r := resolveOption(rec.ColorPalette, catalog.ColorPalettes()); r.Kind == ResolutionMatched {
		cfg.ColorPalette = r.ID
	}
	if r := resolveOption(rec.FontStyle, catalog.FontStyles()); r.Kind == ResolutionMatched {
		cfg.FontStyle = r.ID
	}
	if rec.Headline != "" {
		cfg.Headline = rec.Headline
	}
	if rec.BodyText != "" {
		cfg.BodyText = rec.BodyText
	}
	if rec.CTA != "" {
		cfg.CTA = rec.CTA
	}
	return cfg
}
