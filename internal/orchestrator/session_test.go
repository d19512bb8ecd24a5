package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"anostudio/internal/catalog"
	"anostudio/internal/domain"
	"anostudio/internal/providers/genai"
)

type stubGenerator struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	refs    [][]genai.ImageInput

	result  *genai.ImageResult
	err     error
	perCall func(call int) (*genai.ImageResult, error)
	block   chan struct{}
}

func (g *stubGenerator) GenerateImage(ctx context.Context, apiKey string, refs []genai.ImageInput, prompt string) (*genai.ImageResult, error) {
	g.mu.Lock()
	call := g.calls
	g.calls++
	g.prompts = append(g.prompts, prompt)
	g.refs = append(g.refs, refs)
	block := g.block
	g.mu.Unlock()

	if block != nil {
		<-block
	}
	if g.perCall != nil {
		return g.perCall(call)
	}
	if g.err != nil {
		return nil, g.err
	}
	if g.result != nil {
		return g.result, nil
	}
	return &genai.ImageResult{Data: []byte("generated"), MIME: "image/png"}, nil
}

type stubCredentials struct {
	key string
	err error
}

func (c *stubCredentials) GeminiAPIKey(ctx context.Context) (string, error) {
	return c.key, c.err
}

type memoryAssets struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemoryAssets() *memoryAssets {
	return &memoryAssets{files: make(map[string][]byte)}
}

func (m *memoryAssets) Write(ctx context.Context, key string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	return key, nil
}

func (m *memoryAssets) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	if !ok {
		return nil, fmt.Errorf("missing key %s", key)
	}
	return data, nil
}

func (m *memoryAssets) URL(key string) string { return "/static/" + key }

func newTestManager(gen *stubGenerator, creds *stubCredentials) (*Manager, *memoryAssets) {
	assets := newMemoryAssets()
	logger := zerolog.New(io.Discard)
	return NewManager(gen, creds, assets, logger), assets
}

func newReadySession(t *testing.T, gen *stubGenerator) *Session {
	t.Helper()
	manager, _ := newTestManager(gen, &stubCredentials{key: "k"})
	session, err := manager.Create(domain.ModeMarketing, domain.DefaultSettings())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	session.SetSourceImage([]byte("source"), "image/jpeg")
	return session
}

func TestCreateSessionDefaults(t *testing.T) {
	manager, _ := newTestManager(&stubGenerator{}, &stubCredentials{key: "k"})
	settings := domain.AppSettings{Theme: "dark", Language: "id", NumberOfResults: 6, DefaultWatermark: true}
	session, err := manager.Create(domain.ModeFood, settings)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(session.Results()) != 6 {
		t.Fatalf("result slots = %d", len(session.Results()))
	}
	cfg := session.Config()
	if !cfg.WithWatermark {
		t.Fatal("default watermark setting not applied")
	}
	if cfg.AngleStyle == "" || cfg.BackgroundStyle == "" {
		t.Fatalf("style axes not defaulted: %+v", cfg)
	}

	got, err := manager.Get(session.ID())
	if err != nil || got != session {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := manager.Get("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get unknown = %v", err)
	}
}

func TestCreateSessionRejectsUnknownMode(t *testing.T) {
	manager, _ := newTestManager(&stubGenerator{}, &stubCredentials{key: "k"})
	if _, err := manager.Create(domain.Mode("video"), domain.DefaultSettings()); err == nil {
		t.Fatal("expected unsupported mode to fail")
	}
}

func TestGenerateBatchCompletesAllSlots(t *testing.T) {
	gen := &stubGenerator{}
	session := newReadySession(t, gen)

	if err := session.GenerateBatch(context.Background(), 4); err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if gen.calls != 4 {
		t.Fatalf("generator calls = %d", gen.calls)
	}
	for i, item := range session.Results() {
		if item.Status != domain.ResultCompleted {
			t.Fatalf("slot %d status = %s (%s)", i, item.Status, item.ErrorMessage)
		}
		if item.Image == nil || item.Image.URL == "" || item.Image.Prompt == "" {
			t.Fatalf("slot %d missing image payload: %+v", i, item)
		}
	}
	for i := 1; i < len(gen.prompts); i++ {
		if gen.prompts[i] != gen.prompts[0] {
			t.Fatal("batch calls used different prompts")
		}
	}
}

func TestGenerateBatchRecordsPerSlotErrors(t *testing.T) {
	gen := &stubGenerator{perCall: func(call int) (*genai.ImageResult, error) {
		if call%2 == 1 {
			return nil, &genai.NoImageError{ModelText: "cannot depict that"}
		}
		return &genai.ImageResult{Data: []byte("ok"), MIME: "image/png"}, nil
	}}
	session := newReadySession(t, gen)

	if err := session.GenerateBatch(context.Background(), 4); err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	var completed, failed int
	for _, item := range session.Results() {
		switch item.Status {
		case domain.ResultCompleted:
			completed++
		case domain.ResultError:
			failed++
			if item.ErrorMessage != "cannot depict that" {
				t.Fatalf("error message = %q", item.ErrorMessage)
			}
		default:
			t.Fatalf("unexpected status %s", item.Status)
		}
	}
	if completed != 2 || failed != 2 {
		t.Fatalf("completed=%d failed=%d", completed, failed)
	}
}

func TestGenerateBatchRequiresSourceImage(t *testing.T) {
	manager, _ := newTestManager(&stubGenerator{}, &stubCredentials{key: "k"})
	session, err := manager.Create(domain.ModeMarketing, domain.DefaultSettings())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := session.GenerateBatch(context.Background(), 4); !errors.Is(err, domain.ErrMissingSourceImage) {
		t.Fatalf("err = %v", err)
	}
	for _, item := range session.Results() {
		if item.Status != domain.ResultEmpty {
			t.Fatalf("precondition failure mutated slots: %s", item.Status)
		}
	}
}

func TestGenerateBatchRequiresCredential(t *testing.T) {
	manager, _ := newTestManager(&stubGenerator{}, &stubCredentials{key: ""})
	session, err := manager.Create(domain.ModeMarketing, domain.DefaultSettings())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	session.SetSourceImage([]byte("source"), "image/jpeg")
	if err := session.GenerateBatch(context.Background(), 4); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerateBatchRejectsWhileBusy(t *testing.T) {
	gen := &stubGenerator{block: make(chan struct{})}
	session := newReadySession(t, gen)

	done := make(chan error, 1)
	go func() { done <- session.GenerateBatch(context.Background(), 2) }()

	// Wait for the first batch to claim the session.
	for {
		gen.mu.Lock()
		started := gen.calls > 0
		gen.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if err := session.GenerateBatch(context.Background(), 2); !errors.Is(err, domain.ErrSessionBusy) {
		t.Fatalf("second batch err = %v", err)
	}

	close(gen.block)
	if err := <-done; err != nil {
		t.Fatalf("first batch err = %v", err)
	}
}

func TestSourceImageChangeDropsInflightResults(t *testing.T) {
	gen := &stubGenerator{block: make(chan struct{})}
	session := newReadySession(t, gen)

	done := make(chan error, 1)
	go func() { done <- session.GenerateBatch(context.Background(), 2) }()

	for {
		gen.mu.Lock()
		started := gen.calls > 0
		gen.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	session.SetSourceImage([]byte("newer"), "image/jpeg")
	close(gen.block)
	if err := <-done; err != nil {
		t.Fatalf("batch err = %v", err)
	}

	for i, item := range session.Results() {
		if item.Status != domain.ResultEmpty {
			t.Fatalf("stale slot %d applied: %s", i, item.Status)
		}
	}
}

func TestUpscaleBatchMergesURLKeepingOriginal(t *testing.T) {
	gen := &stubGenerator{}
	session := newReadySession(t, gen)
	if err := session.GenerateBatch(context.Background(), 2); err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}

	before := session.Results()
	failed, err := session.UpscaleBatch(context.Background())
	if err != nil {
		t.Fatalf("UpscaleBatch: %v", err)
	}
	if failed != 0 {
		t.Fatalf("failed = %d", failed)
	}
	for i, item := range session.Results() {
		if item.Status != domain.ResultCompleted {
			t.Fatalf("slot %d status = %s", i, item.Status)
		}
		if item.UpscaledURL == "" {
			t.Fatalf("slot %d missing upscaled url", i)
		}
		if item.Image == nil || item.Image.URL != before[i].Image.URL {
			t.Fatalf("slot %d original image changed", i)
		}
	}
	if !strings.Contains(gen.prompts[len(gen.prompts)-1], "Tingkatkan resolusi") {
		t.Fatalf("upscale prompt = %q", gen.prompts[len(gen.prompts)-1])
	}
}

func TestUpscaleBatchNothingToDo(t *testing.T) {
	session := newReadySession(t, &stubGenerator{})
	if _, err := session.UpscaleBatch(context.Background()); !errors.Is(err, domain.ErrNothingToUpscale) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpscaleBatchFailureKeepsOriginal(t *testing.T) {
	gen := &stubGenerator{}
	session := newReadySession(t, gen)
	if err := session.GenerateBatch(context.Background(), 2); err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}

	gen.err = errors.New("quota exhausted")
	failed, err := session.UpscaleBatch(context.Background())
	if err != nil {
		t.Fatalf("UpscaleBatch: %v", err)
	}
	if failed != 2 {
		t.Fatalf("failed = %d", failed)
	}
	for i, item := range session.Results() {
		if item.Status != domain.ResultCompleted {
			t.Fatalf("slot %d status = %s", i, item.Status)
		}
		if item.Image == nil {
			t.Fatalf("slot %d lost its original image", i)
		}
		if item.UpscaledURL != "" {
			t.Fatalf("slot %d gained an upscaled url from a failed call", i)
		}
	}
}

func TestUpscaleBatchSkipsAlreadyUpscaled(t *testing.T) {
	gen := &stubGenerator{}
	session := newReadySession(t, gen)
	if err := session.GenerateBatch(context.Background(), 2); err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if _, err := session.UpscaleBatch(context.Background()); err != nil {
		t.Fatalf("first UpscaleBatch: %v", err)
	}
	if _, err := session.UpscaleBatch(context.Background()); !errors.Is(err, domain.ErrNothingToUpscale) {
		t.Fatalf("second UpscaleBatch err = %v", err)
	}
}

func TestGeneratePosterUsesPosterSourceAndConfig(t *testing.T) {
	gen := &stubGenerator{}
	manager, _ := newTestManager(gen, &stubCredentials{key: "k"})
	session, err := manager.Create(domain.ModeMarketing, domain.DefaultSettings())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := session.GeneratePoster(context.Background()); !errors.Is(err, domain.ErrMissingSourceImage) {
		t.Fatalf("poster without source err = %v", err)
	}

	session.SetPosterSource([]byte("poster-base"), "image/png")
	if err := session.GeneratePoster(context.Background()); !errors.Is(err, domain.ErrMissingHeadline) {
		t.Fatalf("poster without headline err = %v", err)
	}

	cfg := session.PosterConfig()
	cfg.Headline = "Diskon 50%"
	if err := session.UpdatePosterConfig(cfg); err != nil {
		t.Fatalf("UpdatePosterConfig: %v", err)
	}
	if err := session.GeneratePoster(context.Background()); err != nil {
		t.Fatalf("GeneratePoster: %v", err)
	}
	results := session.PosterResults()
	if len(results) != 4 {
		t.Fatalf("poster slots = %d", len(results))
	}
	for i, item := range results {
		if item.Status != domain.ResultCompleted {
			t.Fatalf("poster slot %d status = %s", i, item.Status)
		}
	}
	if !strings.Contains(gen.prompts[0], "Diskon 50%") {
		t.Fatalf("poster prompt missing headline: %q", gen.prompts[0])
	}
}

func TestSetPosterSourceResetsCopyAndGuard(t *testing.T) {
	session := newReadySession(t, &stubGenerator{})
	cfg := session.PosterConfig()
	cfg.Headline = "Lama"
	if err := session.UpdatePosterConfig(cfg); err != nil {
		t.Fatalf("UpdatePosterConfig: %v", err)
	}

	session.SetPosterSource([]byte("img"), "image/png")
	if got := session.PosterConfig().Headline; got != "" {
		t.Fatalf("headline survived new poster source: %q", got)
	}

	if !session.ClaimPosterCopy("Kopi Susu") {
		t.Fatal("first claim should succeed")
	}
	if session.ClaimPosterCopy("Kopi Susu") {
		t.Fatal("second claim for the same name should fail")
	}
	if !session.ClaimPosterCopy("Teh Botol") {
		t.Fatal("claim for a new name should succeed")
	}
}

func TestClaimPosterCopySkipsWhenHeadlineSet(t *testing.T) {
	session := newReadySession(t, &stubGenerator{})
	cfg := session.PosterConfig()
	cfg.Headline = "Sudah ada"
	if err := session.UpdatePosterConfig(cfg); err != nil {
		t.Fatalf("UpdatePosterConfig: %v", err)
	}
	if session.ClaimPosterCopy("Kopi Susu") {
		t.Fatal("claim should fail while a headline exists")
	}
}

func TestApplyPosterCopyOnlyWhenBlank(t *testing.T) {
	session := newReadySession(t, &stubGenerator{})
	session.ApplyPosterCopy(domain.PosterCopy{Headline: "Baru", BodyText: "Isi", CTA: "Beli"})
	cfg := session.PosterConfig()
	if cfg.Headline != "Baru" || cfg.BodyText != "Isi" || cfg.CTA != "Beli" {
		t.Fatalf("copy not applied: %+v", cfg)
	}

	session.ApplyPosterCopy(domain.PosterCopy{Headline: "Lain"})
	if session.PosterConfig().Headline != "Baru" {
		t.Fatal("copy overwrote an existing headline")
	}
}

func TestUpdateConfigResetsAxesOnTypeChange(t *testing.T) {
	session := newReadySession(t, &stubGenerator{})
	cfg := session.Config()
	cfg.PhotoType = "skincare"
	if err := session.UpdateConfig(cfg); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	got := session.Config()
	if got.PhotoType != "skincare" {
		t.Fatalf("photo type = %q", got.PhotoType)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("stored config invalid: %v", err)
	}
}

func TestUpdateConfigResetsAxesWithinCategory(t *testing.T) {
	session := newReadySession(t, &stubGenerator{})
	cfg := session.Config()
	cfg.PhotoType = "skincare"
	if err := session.UpdateConfig(cfg); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	cfg = session.Config()
	cfg.AngleStyle = "reflection"
	if err := session.UpdateConfig(cfg); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}

	// Both types are beauty, so the stale angle would still validate. The
	// type change must reset it anyway.
	cfg = session.Config()
	cfg.PhotoType = "makeup"
	if err := session.UpdateConfig(cfg); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	got := session.Config()
	if got.AngleStyle == "reflection" {
		t.Fatal("angle survived a photo type change")
	}
	if got.AngleStyle != catalog.OptionsFor(catalog.CategoryBeauty).Angles[0].ID {
		t.Fatalf("angle = %q, want category default", got.AngleStyle)
	}
}

func TestUpdateConfigRejectsForeignOption(t *testing.T) {
	session := newReadySession(t, &stubGenerator{})
	cfg := session.Config()
	cfg.AngleStyle = "not-an-option"
	if err := session.UpdateConfig(cfg); err == nil {
		t.Fatal("expected foreign option to be rejected")
	}
}

func TestProductNameChangeResetsChat(t *testing.T) {
	session := newReadySession(t, &stubGenerator{})
	session.AppendChat("halo", domain.ChatMessage{Role: domain.RoleUser, Text: "hi"})
	if len(session.ChatHistory()) != 2 {
		t.Fatalf("chat len = %d", len(session.ChatHistory()))
	}
	session.SetProductName("Keripik Singkong")
	if len(session.ChatHistory()) != 0 {
		t.Fatal("chat not reset on product name change")
	}
}

func TestSetPosterSourceFromResult(t *testing.T) {
	gen := &stubGenerator{}
	session := newReadySession(t, gen)
	if err := session.GenerateBatch(context.Background(), 2); err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if err := session.SetPosterSourceFromResult(context.Background(), 0); err != nil {
		t.Fatalf("SetPosterSourceFromResult: %v", err)
	}
	if !session.HasPosterSource() {
		t.Fatal("poster source not set")
	}
	if err := session.SetPosterSourceFromResult(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("out of range err = %v", err)
	}
}
