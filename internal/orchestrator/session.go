package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"anostudio/internal/domain"
	"anostudio/internal/infra"
	"anostudio/internal/promptgen"
	"anostudio/internal/providers/genai"
	"anostudio/internal/storage"
)

const posterSlotCount = 4

// Session is one user's working set: uploaded images, active configuration,
// photo result slots, poster result slots and the assistant conversation.
// All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id   string
	mode domain.Mode

	sourceImage  *genai.ImageInput
	styleImage   *genai.ImageInput
	posterSource *genai.ImageInput

	config       domain.GenerationConfig
	posterConfig domain.PosterConfig

	results       []domain.ResultItem
	posterResults []domain.ResultItem

	chat []domain.ChatMessage

	busy       bool
	posterBusy bool
	batchSeq   uint64
	posterSeq  uint64

	// posterCopyName records the product name the initial poster copy was
	// generated for, so it fires at most once per name.
	posterCopyName string

	manager *Manager
	logger  infra.Logger
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Mode returns the workflow the session was created for.
func (s *Session) Mode() domain.Mode { return s.mode }

// SetSourceImage replaces the primary image. Result slots and the chat are
// reset: recommendations and results for the previous image no longer apply.
// An in-flight batch is invalidated so its slot updates are dropped.
func (s *Session) SetSourceImage(data []byte, mime string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sourceImage = &genai.ImageInput{Data: data, MIME: mime}
	s.results = domain.EmptyResults(len(s.results))
	s.chat = nil
	s.batchSeq++
	s.busy = false
}

// SetStyleImage sets the optional secondary reference image used by the
// portrait two-image template.
func (s *Session) SetStyleImage(data []byte, mime string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styleImage = &genai.ImageInput{Data: data, MIME: mime}
}

// ClearStyleImage removes the secondary reference image.
func (s *Session) ClearStyleImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styleImage = nil
}

// HasSourceImage reports whether a primary image has been uploaded.
func (s *Session) HasSourceImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceImage != nil
}

// HasStyleImage reports whether a style reference image is present.
func (s *Session) HasStyleImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.styleImage != nil
}

// Config returns a copy of the active generation config.
func (s *Session) Config() domain.GenerationConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// UpdateConfig validates and stores a full config. A product type change
// resets every style axis to the new category's defaults; carried-over ids
// could otherwise point at options from the previous category's lists.
func (s *Session) UpdateConfig(cfg domain.GenerationConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg.PhotoType != s.config.PhotoType {
		cfg.SetPhotoType(cfg.PhotoType)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ProductName != s.config.ProductName {
		s.chat = nil
	}
	s.config = cfg
	s.posterConfig.ProductName = cfg.ProductName
	return nil
}

// SetProductName updates only the product name, resetting the chat when the
// name changed. The poster config tracks the same name.
func (s *Session) SetProductName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.TrimSpace(name)
	if name != s.config.ProductName {
		s.chat = nil
	}
	s.config.ProductName = name
	s.posterConfig.ProductName = name
}

// PosterConfig returns a copy of the poster configuration.
func (s *Session) PosterConfig() domain.PosterConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posterConfig
}

// UpdatePosterConfig stores the poster configuration. Style ids are checked;
// the headline requirement is enforced at generation time instead, so the
// user can save drafts.
func (s *Session) UpdatePosterConfig(cfg domain.PosterConfig) error {
	check := cfg
	if strings.TrimSpace(check.Headline) == "" {
		check.Headline = "-"
	}
	if err := check.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posterConfig = cfg
	return nil
}

// SetPosterSource sets the poster base image from an upload. Poster text
// fields reset so copy written for the previous image does not linger; the
// once-per-name guard resets with them.
func (s *Session) SetPosterSource(data []byte, mime string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posterSource = &genai.ImageInput{Data: data, MIME: mime}
	s.posterConfig.Headline = ""
	s.posterConfig.BodyText = ""
	s.posterConfig.CTA = ""
	s.posterCopyName = ""
	s.posterResults = domain.EmptyResults(posterSlotCount)
	s.posterSeq++
	s.posterBusy = false
}

// SetPosterSourceFromResult promotes a completed photo result to poster
// source, preferring the upscaled rendition when one exists.
func (s *Session) SetPosterSourceFromResult(ctx context.Context, index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.results) {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	item := s.results[index]
	s.mu.Unlock()

	if item.Status != domain.ResultCompleted || item.Image == nil {
		return domain.ErrNotFound
	}
	key := item.Image.StorageKey
	if item.UpscaledKey != "" {
		key = item.UpscaledKey
	}
	data, err := s.manager.assets.Read(ctx, key)
	if err != nil {
		return fmt.Errorf("load result image: %w", err)
	}
	s.SetPosterSource(data, item.Image.MIME)
	return nil
}

// HasPosterSource reports whether a poster base image is present.
func (s *Session) HasPosterSource() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posterSource != nil
}

// PosterSource returns the poster base image, or nil.
func (s *Session) PosterSource() *genai.ImageInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posterSource
}

// SourceImage returns the primary image, or nil.
func (s *Session) SourceImage() *genai.ImageInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceImage
}

// Results returns a snapshot of the photo result slots.
func (s *Session) Results() []domain.ResultItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ResultItem, len(s.results))
	copy(out, s.results)
	return out
}

// PosterResults returns a snapshot of the poster result slots.
func (s *Session) PosterResults() []domain.ResultItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ResultItem, len(s.posterResults))
	copy(out, s.posterResults)
	return out
}

// ChatHistory returns a snapshot of the assistant conversation.
func (s *Session) ChatHistory() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}

// AppendChat adds a message to the conversation. An empty history is seeded
// with the given greeting first so the transcript always opens with the
// assistant.
func (s *Session) AppendChat(greeting string, msgs ...domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.chat) == 0 && greeting != "" {
		s.chat = append(s.chat, domain.ChatMessage{Role: domain.RoleAssistant, Text: greeting})
	}
	s.chat = append(s.chat, msgs...)
}

// ResetChat clears the conversation and seeds it with a greeting.
func (s *Session) ResetChat(greeting string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = nil
	if greeting != "" {
		s.chat = []domain.ChatMessage{{Role: domain.RoleAssistant, Text: greeting}}
	}
}

// ClaimPosterCopy reports whether the initial poster copy should run for the
// given product name, and claims the slot when it should. It fires at most
// once per name, and only while the headline is still empty.
func (s *Session) ClaimPosterCopy(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" || name == s.posterCopyName {
		return false
	}
	if strings.TrimSpace(s.posterConfig.Headline) != "" {
		return false
	}
	s.posterCopyName = name
	return true
}

// ApplyPosterCopy fills the poster text fields when they are still blank.
func (s *Session) ApplyPosterCopy(copyText domain.PosterCopy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(s.posterConfig.Headline) != "" {
		return
	}
	s.posterConfig.Headline = copyText.Headline
	s.posterConfig.BodyText = copyText.BodyText
	s.posterConfig.CTA = copyText.CTA
}

// GenerateBatch runs count concurrent generation calls against the current
// config, one per slot. The call joins all branches; per-slot failures land
// in the slots, and the returned error covers only global preconditions.
func (s *Session) GenerateBatch(ctx context.Context, count int) error {
	switch count {
	case 2, 4, 6:
	default:
		count = 4
	}

	apiKey, err := s.manager.credentials.GeminiAPIKey(ctx)
	if err != nil {
		return fmt.Errorf("resolve credential: %w", err)
	}
	if apiKey == "" {
		return domain.ErrMissingCredential
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.ErrSessionBusy
	}
	if s.sourceImage == nil {
		s.mu.Unlock()
		return domain.ErrMissingSourceImage
	}

	if len(s.results) != count {
		s.results = domain.EmptyResults(count)
	}
	refs := []genai.ImageInput{*s.sourceImage}
	hasStyle := false
	if s.mode == domain.ModePortrait && s.styleImage != nil {
		refs = append(refs, *s.styleImage)
		hasStyle = true
	}
	prompt := promptgen.Compile(s.config, s.mode, hasStyle)

	for i := range s.results {
		if err := s.results[i].Transition(domain.ResultGenerating); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.busy = true
	s.batchSeq++
	seq := s.batchSeq
	s.mu.Unlock()

	s.logger.Info().Int("count", count).Str("mode", string(s.mode)).Msg("generation batch started")

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		slot := i
		g.Go(func() error {
			s.runSlot(gctx, seq, slot, apiKey, refs, prompt, false)
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	if seq == s.batchSeq {
		s.busy = false
	}
	s.mu.Unlock()
	return nil
}

// GeneratePoster runs the fixed four-slot poster batch from the poster
// source image and configuration.
func (s *Session) GeneratePoster(ctx context.Context) error {
	apiKey, err := s.manager.credentials.GeminiAPIKey(ctx)
	if err != nil {
		return fmt.Errorf("resolve credential: %w", err)
	}
	if apiKey == "" {
		return domain.ErrMissingCredential
	}

	s.mu.Lock()
	if s.posterBusy {
		s.mu.Unlock()
		return domain.ErrSessionBusy
	}
	if s.posterSource == nil {
		s.mu.Unlock()
		return domain.ErrMissingSourceImage
	}
	if err := s.posterConfig.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}

	refs := []genai.ImageInput{*s.posterSource}
	prompt := promptgen.CompilePoster(s.posterConfig)

	for i := range s.posterResults {
		if err := s.posterResults[i].Transition(domain.ResultGenerating); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.posterBusy = true
	s.posterSeq++
	seq := s.posterSeq
	s.mu.Unlock()

	s.logger.Info().Int("count", posterSlotCount).Msg("poster batch started")

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < posterSlotCount; i++ {
		slot := i
		g.Go(func() error {
			s.runSlot(gctx, seq, slot, apiKey, refs, prompt, true)
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	if seq == s.posterSeq {
		s.posterBusy = false
	}
	s.mu.Unlock()
	return nil
}

// UpscaleBatch upscales every completed photo result that does not yet have
// an upscaled rendition. Failed items keep their original image; the number
// of failures is returned so callers can surface one aggregate warning.
func (s *Session) UpscaleBatch(ctx context.Context) (failed int, err error) {
	apiKey, err := s.manager.credentials.GeminiAPIKey(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve credential: %w", err)
	}
	if apiKey == "" {
		return 0, domain.ErrMissingCredential
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return 0, domain.ErrSessionBusy
	}
	var targets []int
	for i, item := range s.results {
		if item.Status == domain.ResultCompleted && item.UpscaledURL == "" && item.Image != nil {
			targets = append(targets, i)
		}
	}
	if len(targets) == 0 {
		s.mu.Unlock()
		return 0, domain.ErrNothingToUpscale
	}
	for _, i := range targets {
		if err := s.results[i].Transition(domain.ResultUpscaling); err != nil {
			s.mu.Unlock()
			return 0, err
		}
	}
	s.busy = true
	seq := s.batchSeq
	s.mu.Unlock()

	s.logger.Info().Int("count", len(targets)).Msg("upscale batch started")

	var failures int
	var failMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, i := range targets {
		slot := i
		g.Go(func() error {
			if !s.upscaleSlot(gctx, seq, slot, apiKey) {
				failMu.Lock()
				failures++
				failMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	if seq == s.batchSeq {
		s.busy = false
	}
	s.mu.Unlock()
	return failures, nil
}

// runSlot executes one generation call and writes the outcome into the slot,
// unless a newer batch superseded this one in the meantime.
func (s *Session) runSlot(ctx context.Context, seq uint64, slot int, apiKey string, refs []genai.ImageInput, prompt string, poster bool) {
	result, callErr := s.manager.generator.GenerateImage(ctx, apiKey, refs, prompt)

	var key, url string
	if callErr == nil {
		kind := "result"
		if poster {
			kind = "poster"
		}
		name := fmt.Sprintf("sessions/%s/%s-%d-%d%s", s.id, kind, seq, slot, storage.ExtensionForMIME(result.MIME))
		key, callErr = s.manager.assets.Write(ctx, name, result.Data)
		if callErr == nil {
			url = s.manager.assets.URL(key)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if poster {
		if seq != s.posterSeq || slot >= len(s.posterResults) {
			s.logger.Debug().Int("slot", slot).Err(domain.ErrBatchSuperseded).Msg("slot update dropped")
			return
		}
	} else if seq != s.batchSeq || slot >= len(s.results) {
		s.logger.Debug().Int("slot", slot).Err(domain.ErrBatchSuperseded).Msg("slot update dropped")
		return
	}

	items := s.results
	if poster {
		items = s.posterResults
	}
	if callErr != nil {
		msg := failureMessage(callErr)
		if err := items[slot].Fail(msg); err != nil {
			s.logger.Error().Err(err).Int("slot", slot).Msg("slot failure not recorded")
		}
		s.logger.Warn().Int("slot", slot).Str("reason", msg).Msg("generation slot failed")
		return
	}
	img := domain.GeneratedImage{URL: url, StorageKey: key, MIME: result.MIME, Prompt: prompt}
	if err := items[slot].CompleteWith(img); err != nil {
		s.logger.Error().Err(err).Int("slot", slot).Msg("slot completion not recorded")
	}
}

// upscaleSlot runs one upscale call. It reports success; failed slots return
// to completed with the original image intact.
func (s *Session) upscaleSlot(ctx context.Context, seq uint64, slot int, apiKey string) bool {
	s.mu.Lock()
	if seq != s.batchSeq || slot >= len(s.results) || s.results[slot].Image == nil {
		s.mu.Unlock()
		return false
	}
	item := s.results[slot]
	s.mu.Unlock()

	fail := func(reason string) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.batchSeq {
			return false
		}
		if err := s.results[slot].FailUpscale(reason); err != nil {
			s.logger.Error().Err(err).Int("slot", slot).Msg("upscale failure not recorded")
		}
		s.logger.Warn().Int("slot", slot).Str("reason", reason).Msg("upscale slot failed")
		return false
	}

	data, err := s.manager.assets.Read(ctx, item.Image.StorageKey)
	if err != nil {
		return fail(fmt.Sprintf("load original image: %v", err))
	}

	result, err := s.manager.generator.GenerateImage(ctx, apiKey, []genai.ImageInput{{Data: data, MIME: item.Image.MIME}}, promptgen.UpscaleInstruction)
	if err != nil {
		return fail(failureMessage(err))
	}

	name := fmt.Sprintf("sessions/%s/upscaled-%d-%d%s", s.id, seq, slot, storage.ExtensionForMIME(result.MIME))
	key, err := s.manager.assets.Write(ctx, name, result.Data)
	if err != nil {
		return fail(fmt.Sprintf("store upscaled image: %v", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.batchSeq {
		return false
	}
	if err := s.results[slot].CompleteUpscale(s.manager.assets.URL(key), key); err != nil {
		s.logger.Error().Err(err).Int("slot", slot).Msg("upscale completion not recorded")
		return false
	}
	return true
}

// failureMessage converts a provider error into a user-facing message. When
// the model answered with text instead of an image, the text is the most
// useful thing to show.
func failureMessage(err error) string {
	var noImage *genai.NoImageError
	if errors.As(err, &noImage) && noImage.ModelText != "" {
		return noImage.ModelText
	}
	return err.Error()
}
