// Package orchestrator owns generation sessions: the uploaded images, the
// active configuration, and the per-slot lifecycle of every batch.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"anostudio/internal/catalog"
	"anostudio/internal/domain"
	"anostudio/internal/infra"
	"anostudio/internal/providers/genai"
)

// Generator is the slice of the Gemini client the orchestrator needs.
type Generator interface {
	GenerateImage(ctx context.Context, apiKey string, refs []genai.ImageInput, prompt string) (*genai.ImageResult, error)
}

// CredentialSource resolves the provider API key at call time so key
// rotation applies to the next batch without a restart.
type CredentialSource interface {
	GeminiAPIKey(ctx context.Context) (string, error)
}

// AssetStore persists generated image bytes and maps keys to serve URLs.
type AssetStore interface {
	Write(ctx context.Context, key string, data []byte) (string, error)
	Read(ctx context.Context, key string) ([]byte, error)
	URL(key string) string
}

// Manager tracks live sessions by id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	generator   Generator
	credentials CredentialSource
	assets      AssetStore
	logger      infra.Logger
}

func NewManager(generator Generator, credentials CredentialSource, assets AssetStore, logger infra.Logger) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		generator:   generator,
		credentials: credentials,
		assets:      assets,
		logger:      logger,
	}
}

// Create starts a session for the given mode. The result slot count and the
// default watermark toggle come from the caller's settings.
func (m *Manager) Create(mode domain.Mode, settings domain.AppSettings) (*Session, error) {
	if !domain.ValidMode(mode) {
		return nil, fmt.Errorf("unsupported mode %q", mode)
	}
	settings = settings.Normalize()

	cfg := domain.DefaultConfigFor(defaultProductType(mode))
	cfg.WithWatermark = settings.DefaultWatermark

	id := uuid.NewString()
	session := &Session{
		id:            id,
		mode:          mode,
		config:        cfg,
		posterConfig:  domain.DefaultPosterConfig(),
		results:       domain.EmptyResults(settings.NumberOfResults),
		posterResults: domain.EmptyResults(posterSlotCount),
		manager:       m,
		logger:        m.logger.With().Str("session_id", id).Logger(),
	}

	m.mu.Lock()
	m.sessions[session.id] = session
	m.mu.Unlock()
	return session, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// Delete discards a session. In-flight batches keep running but their slot
// updates land on an unreferenced session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func defaultProductType(mode domain.Mode) catalog.ProductType {
	var types []catalog.ProductTypeInfo
	switch mode {
	case domain.ModeFood:
		types = catalog.FoodProductTypes()
	case domain.ModePortrait:
		types = catalog.PortraitSubjectTypes()
	default:
		types = catalog.MarketingProductTypes()
	}
	return types[0].ID
}
