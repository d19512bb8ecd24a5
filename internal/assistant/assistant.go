// Package assistant drives the structured-output Gemini calls behind the
// creative chat: style and poster recommendations, generated poster copy,
// and product identification.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"anostudio/internal/catalog"
	"anostudio/internal/domain"
	"anostudio/internal/infra"
	"anostudio/internal/providers/genai"
)

// StructuredCaller is the slice of the Gemini client the assistant needs.
type StructuredCaller interface {
	GenerateStructured(ctx context.Context, apiKey string, refs []genai.ImageInput, prompt string, schema *genai.Schema, out any) error
}

// CredentialSource resolves the provider API key at call time.
type CredentialSource interface {
	GeminiAPIKey(ctx context.Context) (string, error)
}

type Assistant struct {
	caller      StructuredCaller
	credentials CredentialSource
	logger      infra.Logger
}

func New(caller StructuredCaller, credentials CredentialSource, logger infra.Logger) *Assistant {
	return &Assistant{caller: caller, credentials: credentials, logger: logger}
}

// StyleReply is an assistant answer for the photography views: the free-text
// reasoning plus the raw recommendation, resolved by Apply* on demand.
type StyleReply struct {
	Reasoning      string
	Recommendation domain.StyleRecommendation
}

// PosterReply is an assistant answer for the poster view.
type PosterReply struct {
	Reasoning      string
	Recommendation domain.PosterRecommendation
}

type styleEnvelope struct {
	Reasoning       string                     `json:"reasoning"`
	Recommendations domain.StyleRecommendation `json:"recommendations"`
}

type posterEnvelope struct {
	Reasoning       string                      `json:"reasoning"`
	Recommendations domain.PosterRecommendation `json:"recommendations"`
}

type identification struct {
	ProductName string `json:"productName"`
	PhotoType   string `json:"photoType"`
}

func (a *Assistant) apiKey(ctx context.Context) (string, error) {
	key, err := a.credentials.GeminiAPIKey(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve credential: %w", err)
	}
	if key == "" {
		return "", domain.ErrMissingCredential
	}
	return key, nil
}

// StyleRecommendations asks for creative direction for the current config
// and the user's request. The recommendation carries display names; callers
// resolve them with ApplyStyleRecommendation.
func (a *Assistant) StyleRecommendations(ctx context.Context, cfg domain.GenerationConfig, mode domain.Mode, query, language string) (StyleReply, error) {
	key, err := a.apiKey(ctx)
	if err != nil {
		return StyleReply{}, err
	}
	var envelope styleEnvelope
	prompt := stylePrompt(cfg, mode, query, language)
	if err := a.caller.GenerateStructured(ctx, key, nil, prompt, styleSchema(language), &envelope); err != nil {
		a.logger.Warn().Err(err).Msg("style recommendation call failed")
		return StyleReply{}, fmt.Errorf("%w: %v", domain.ErrUnparsableRecommendation, err)
	}
	return StyleReply{Reasoning: envelope.Reasoning, Recommendation: envelope.Recommendations}, nil
}

// PosterRecommendations asks for a poster design direction plus copy.
func (a *Assistant) PosterRecommendations(ctx context.Context, cfg domain.PosterConfig, query, language string) (PosterReply, error) {
	key, err := a.apiKey(ctx)
	if err != nil {
		return PosterReply{}, err
	}
	var envelope posterEnvelope
	prompt := posterPrompt(cfg, query, language)
	if err := a.caller.GenerateStructured(ctx, key, nil, prompt, posterSchema(language), &envelope); err != nil {
		a.logger.Warn().Err(err).Msg("poster recommendation call failed")
		return PosterReply{}, fmt.Errorf("%w: %v", domain.ErrUnparsableRecommendation, err)
	}
	return PosterReply{Reasoning: envelope.Reasoning, Recommendation: envelope.Recommendations}, nil
}

// InitialPosterCopy generates headline, body and call-to-action for a
// product name. Meant to be fired once per name while the headline is blank.
func (a *Assistant) InitialPosterCopy(ctx context.Context, productName, language string) (domain.PosterCopy, error) {
	key, err := a.apiKey(ctx)
	if err != nil {
		return domain.PosterCopy{}, err
	}
	var copyText domain.PosterCopy
	prompt := posterCopyPrompt(productName, language)
	if err := a.caller.GenerateStructured(ctx, key, nil, prompt, posterCopySchema(), &copyText); err != nil {
		a.logger.Warn().Err(err).Msg("initial poster copy call failed")
		return domain.PosterCopy{}, fmt.Errorf("%w: %v", domain.ErrUnparsableRecommendation, err)
	}
	return copyText, nil
}

// IdentifyProduct names and classifies the subject of an image. An unknown
// photoType from the model falls back to the first marketing product type.
func (a *Assistant) IdentifyProduct(ctx context.Context, image genai.ImageInput) (name string, photoType catalog.ProductType, err error) {
	key, err := a.apiKey(ctx)
	if err != nil {
		return "", "", err
	}
	var parsed identification
	if err := a.caller.GenerateStructured(ctx, key, []genai.ImageInput{image}, identifyPrompt(), identifySchema(), &parsed); err != nil {
		a.logger.Warn().Err(err).Msg("product identification call failed")
		return "", "", fmt.Errorf("identify product: %w", err)
	}
	pt := catalog.ProductType(strings.TrimSpace(parsed.PhotoType))
	if !catalog.KnownProductType(pt) {
		a.logger.Warn().Str("photo_type", parsed.PhotoType).Msg("unknown photo type from model, using fallback")
		pt = catalog.MarketingProductTypes()[0].ID
	}
	return strings.TrimSpace(parsed.ProductName), pt, nil
}
