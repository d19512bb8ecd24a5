package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"anostudio/internal/catalog"
	"anostudio/internal/domain"
	"anostudio/internal/providers/genai"
)

type stubCaller struct {
	payload string
	err     error

	prompt string
	schema *genai.Schema
	refs   []genai.ImageInput
}

func (c *stubCaller) GenerateStructured(ctx context.Context, apiKey string, refs []genai.ImageInput, prompt string, schema *genai.Schema, out any) error {
	c.prompt = prompt
	c.schema = schema
	c.refs = refs
	if c.err != nil {
		return c.err
	}
	return json.Unmarshal([]byte(c.payload), out)
}

type stubCredentials struct {
	key string
	err error
}

func (c *stubCredentials) GeminiAPIKey(ctx context.Context) (string, error) {
	return c.key, c.err
}

func newAssistant(caller *stubCaller, key string) *Assistant {
	return New(caller, &stubCredentials{key: key}, zerolog.New(io.Discard))
}

func foodConfig() domain.GenerationConfig {
	cfg := domain.DefaultConfigFor("hidangan-utama")
	cfg.ProductName = "Nasi Goreng Spesial"
	return cfg
}

func TestStyleRecommendations(t *testing.T) {
	caller := &stubCaller{payload: `{
		"reasoning": "<p>Coba suasana hangat.</p>",
		"recommendations": {
			"angleStyle": "45-Degree Angle",
			"lightingStyle": "Golden Hour / Warm & Golden",
			"stylingStyle": "",
			"backgroundStyle": "Rustic Wooden Table"
		}
	}`}
	a := newAssistant(caller, "k")

	reply, err := a.StyleRecommendations(context.Background(), foodConfig(), domain.ModeFood, "suasana hangat", "id")
	if err != nil {
		t.Fatalf("StyleRecommendations: %v", err)
	}
	if reply.Reasoning != "<p>Coba suasana hangat.</p>" {
		t.Fatalf("reasoning = %q", reply.Reasoning)
	}
	if reply.Recommendation.AngleStyle != "45-Degree Angle" {
		t.Fatalf("recommendation = %+v", reply.Recommendation)
	}
	if !strings.Contains(caller.prompt, "Nasi Goreng Spesial") {
		t.Fatal("prompt missing product name")
	}
	if !strings.Contains(caller.prompt, "MUST be in Indonesian") {
		t.Fatal("prompt missing response language")
	}
	if !strings.Contains(caller.prompt, "45-Degree Angle") {
		t.Fatal("prompt missing option names")
	}
	if caller.schema == nil || caller.schema.Properties["recommendations"] == nil {
		t.Fatal("schema not sent")
	}
}

func TestStyleRecommendationsUnparsable(t *testing.T) {
	caller := &stubCaller{err: errors.New("garbled output")}
	a := newAssistant(caller, "k")
	_, err := a.StyleRecommendations(context.Background(), foodConfig(), domain.ModeFood, "q", "id")
	if !errors.Is(err, domain.ErrUnparsableRecommendation) {
		t.Fatalf("err = %v", err)
	}
}

func TestStyleRecommendationsMissingCredential(t *testing.T) {
	a := newAssistant(&stubCaller{}, "")
	_, err := a.StyleRecommendations(context.Background(), foodConfig(), domain.ModeFood, "q", "id")
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("err = %v", err)
	}
}

func TestPosterRecommendations(t *testing.T) {
	caller := &stubCaller{payload: `{
		"reasoning": "<p>Go bold.</p>",
		"recommendations": {
			"theme": "Bold & Modern",
			"colorPalette": "unknown palette",
			"fontStyle": "",
			"headline": "Grand Opening!",
			"bodyText": "",
			"cta": "Kunjungi sekarang"
		}
	}`}
	a := newAssistant(caller, "k")

	cfg := domain.DefaultPosterConfig()
	cfg.ProductName = "Kopi Susu"
	reply, err := a.PosterRecommendations(context.Background(), cfg, "grand opening", "en")
	if err != nil {
		t.Fatalf("PosterRecommendations: %v", err)
	}
	if reply.Recommendation.Headline != "Grand Opening!" {
		t.Fatalf("recommendation = %+v", reply.Recommendation)
	}
	if !strings.Contains(caller.prompt, "Kopi Susu") || !strings.Contains(caller.prompt, "grand opening") {
		t.Fatal("prompt missing context")
	}
	if !strings.Contains(caller.prompt, "English") {
		t.Fatal("prompt missing response language")
	}
}

func TestInitialPosterCopy(t *testing.T) {
	caller := &stubCaller{payload: `{"headline":"Segar Setiap Hari","bodyText":"Dibuat dari bahan pilihan.","cta":"Pesan sekarang!"}`}
	a := newAssistant(caller, "k")

	copyText, err := a.InitialPosterCopy(context.Background(), "Es Teh Manis", "id")
	if err != nil {
		t.Fatalf("InitialPosterCopy: %v", err)
	}
	if copyText.Headline != "Segar Setiap Hari" || copyText.CTA != "Pesan sekarang!" {
		t.Fatalf("copy = %+v", copyText)
	}
	if !strings.Contains(caller.prompt, "Es Teh Manis") {
		t.Fatal("prompt missing product name")
	}
}

func TestIdentifyProduct(t *testing.T) {
	caller := &stubCaller{payload: `{"productName":"Sepatu hak tinggi merah","photoType":"sepatu-olahraga"}`}
	a := newAssistant(caller, "k")

	name, pt, err := a.IdentifyProduct(context.Background(), genai.ImageInput{Data: []byte("img"), MIME: "image/png"})
	if err != nil {
		t.Fatalf("IdentifyProduct: %v", err)
	}
	if name != "Sepatu hak tinggi merah" || pt != "sepatu-olahraga" {
		t.Fatalf("got %q %q", name, pt)
	}
	if len(caller.refs) != 1 {
		t.Fatal("image not sent with the prompt")
	}
}

func TestIdentifyProductUnknownTypeFallsBack(t *testing.T) {
	caller := &stubCaller{payload: `{"productName":"Misteri","photoType":"holografik"}`}
	a := newAssistant(caller, "k")

	_, pt, err := a.IdentifyProduct(context.Background(), genai.ImageInput{Data: []byte("img"), MIME: "image/png"})
	if err != nil {
		t.Fatalf("IdentifyProduct: %v", err)
	}
	if pt != catalog.MarketingProductTypes()[0].ID {
		t.Fatalf("fallback type = %q", pt)
	}
}

func TestApplyStyleRecommendationMatchesAndFallsBack(t *testing.T) {
	cfg := foodConfig()
	originalStyling := cfg.StylingStyle

	got := ApplyStyleRecommendation(cfg, domain.ModeFood, domain.StyleRecommendation{
		AngleStyle:      "45-degree angle",
		LightingStyle:   "Golden Hour / Warm & Golden",
		StylingStyle:    "Something The App Never Heard Of",
		BackgroundStyle: "Meja marmer dengan kain sutra",
	})
	if got.AngleStyle != "45-degree" {
		t.Fatalf("angle = %q", got.AngleStyle)
	}
	if got.LightingStyle != "golden-hour" {
		t.Fatalf("lighting = %q", got.LightingStyle)
	}
	if got.StylingStyle != originalStyling {
		t.Fatalf("unmatched styling changed: %q", got.StylingStyle)
	}
	if got.BackgroundStyle != catalog.OptionOther {
		t.Fatalf("background = %q", got.BackgroundStyle)
	}
	if got.CustomBackgroundStyle != "Meja marmer dengan kain sutra" {
		t.Fatalf("custom background = %q", got.CustomBackgroundStyle)
	}
}

func TestApplyStyleRecommendationMatchedBackgroundClearsCustom(t *testing.T) {
	cfg := foodConfig()
	cfg.BackgroundStyle = catalog.OptionOther
	cfg.CustomBackgroundStyle = "sisa teks lama"

	set := catalog.OptionsFor(catalog.CategoryFood)
	known := set.Backgrounds[1]
	got := ApplyStyleRecommendation(cfg, domain.ModeFood, domain.StyleRecommendation{
		BackgroundStyle: known.NameEN,
	})
	if got.BackgroundStyle != known.ID {
		t.Fatalf("background = %q, want %q", got.BackgroundStyle, known.ID)
	}
	if got.CustomBackgroundStyle != "" {
		t.Fatalf("custom text not cleared: %q", got.CustomBackgroundStyle)
	}
}

func TestApplyStyleRecommendationIgnoresOutfitOutsidePortrait(t *testing.T) {
	cfg := foodConfig()
	got := ApplyStyleRecommendation(cfg, domain.ModeFood, domain.StyleRecommendation{
		OutfitStyle: "Business Suit",
	})
	if got.OutfitStyle != cfg.OutfitStyle {
		t.Fatalf("outfit changed outside portrait: %q", got.OutfitStyle)
	}
}

func TestApplyPosterRecommendation(t *testing.T) {
	cfg := domain.DefaultPosterConfig()
	cfg.Headline = "Lama"

	got := ApplyPosterRecommendation(cfg, domain.PosterRecommendation{
		Theme:        "bold & modern",
		ColorPalette: "no such palette",
		FontStyle:    "",
		Headline:     "Baru dan Segar",
		CTA:          "Beli sekarang",
	})
	if got.Theme != "bold-modern" {
		t.Fatalf("theme = %q", got.Theme)
	}
	if got.ColorPalette != cfg.ColorPalette {
		t.Fatalf("unmatched palette changed: %q", got.ColorPalette)
	}
	if got.Headline != "Baru dan Segar" || got.CTA != "Beli sekarang" {
		t.Fatalf("copy not applied: %+v", got)
	}
	if got.BodyText != cfg.BodyText {
		t.Fatalf("empty body text overwrote existing: %q", got.BodyText)
	}
}

func TestGreeting(t *testing.T) {
	if got := Greeting(domain.ModeMarketing, true, "", "id"); !strings.Contains(got, "poster") {
		t.Fatalf("poster greeting = %q", got)
	}
	if got := Greeting(domain.ModeMarketing, false, "", "en"); !strings.Contains(got, "AI assistant") {
		t.Fatalf("generic greeting = %q", got)
	}
	if got := Greeting(domain.ModeMarketing, false, "Kopi Susu", "id"); !strings.Contains(got, "Kopi Susu") {
		t.Fatalf("product greeting = %q", got)
	}
	if got := Greeting(domain.ModePortrait, false, "Pria berjas", "id"); !strings.Contains(got, "Pria berjas") {
		t.Fatalf("portrait greeting = %q", got)
	}
	if got := Greeting(domain.ModeMarketing, false, "", "fr"); !strings.Contains(got, "Halo") {
		t.Fatalf("unknown language fallback = %q", got)
	}
}
