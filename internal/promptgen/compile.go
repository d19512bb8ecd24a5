package promptgen

import (
	"strings"

	"anostudio/internal/catalog"
	"anostudio/internal/domain"
)

// Compile renders the photography prompt for a config. Marketing and food
// modes share the product template; portrait mode selects between the
// single-image and two-image (style reference) templates.
func Compile(cfg domain.GenerationConfig, mode domain.Mode, hasStyleImage bool) string {
	set := catalog.OptionsFor(catalog.CategoryOf(cfg.PhotoType))

	description := catalog.ProductTypeName(cfg.PhotoType, "id")
	if name := strings.TrimSpace(cfg.ProductName); name != "" {
		description = name + " (kategori: " + description + ")"
	}

	background := styleName(cfg.BackgroundStyle, set.Backgrounds)
	if cfg.BackgroundStyle == catalog.OptionOther {
		background = strings.TrimSpace(cfg.CustomBackgroundStyle)
		if background == "" {
			background = customBackgroundText
		}
	}

	extra := strings.TrimSpace(cfg.ExtraInstructions)
	if extra == "" {
		extra = noExtraText
	}

	template := productTemplate
	subjectKey := "{{product_description}}"
	if mode == domain.ModePortrait {
		subjectKey = "{{subject_description}}"
		if hasStyleImage {
			template = portraitWithStyleTemplate
		} else {
			template = portraitTemplate
		}
	}

	pairs := []string{
		subjectKey, description,
		"{{angle_style}}", styleName(cfg.AngleStyle, set.Angles),
		"{{lighting_style}}", styleName(cfg.LightingStyle, set.Lighting),
		"{{styling_style}}", styleName(cfg.StylingStyle, set.Styling),
		"{{background_style}}", background,
		"{{extra_instructions}}", extra,
		"{{watermark_instruction}}", watermarkClause(cfg),
	}
	if mode == domain.ModePortrait {
		pairs = append(pairs, "{{outfit_style}}", styleName(cfg.OutfitStyle, set.Outfits))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// CompilePoster renders the poster designer prompt. Style ids are resolved
// to their Indonesian names; blank body and CTA fall back to explicit
// "none" markers so the model does not invent copy.
func CompilePoster(cfg domain.PosterConfig) string {
	name := strings.TrimSpace(cfg.ProductName)
	if name == "" {
		name = fallbackPosterProduct
	}
	body := strings.TrimSpace(cfg.BodyText)
	if body == "" {
		body = noBodyText
	}
	cta := strings.TrimSpace(cfg.CTA)
	if cta == "" {
		cta = noCTAText
	}
	return strings.NewReplacer(
		"{{product_name}}", name,
		"{{theme}}", catalog.OptionNameID(cfg.Theme, catalog.PosterThemes()),
		"{{color_palette}}", catalog.OptionNameID(cfg.ColorPalette, catalog.ColorPalettes()),
		"{{font_style}}", catalog.OptionNameID(cfg.FontStyle, catalog.FontStyles()),
		"{{headline}}", cfg.Headline,
		"{{body_text}}", body,
		"{{cta}}", cta,
	).Replace(posterTemplate)
}

// styleName resolves an option id to its Indonesian display name. A blank
// id stays blank, the random sentinel becomes a delegation phrase, and
// unknown ids pass through verbatim so hand-typed values survive.
func styleName(id string, options []catalog.StyleOption) string {
	if id == "" {
		return ""
	}
	if id == catalog.OptionRandom {
		return randomStyleText
	}
	return catalog.OptionNameID(id, options)
}

func watermarkClause(cfg domain.GenerationConfig) string {
	if !cfg.WithWatermark {
		return defaultWatermarkClause
	}
	if custom := strings.TrimSpace(cfg.CustomWatermarkText); custom != "" {
		return customWatermarkPrefix + custom + customWatermarkSuffix
	}
	return noWatermarkClause
}
