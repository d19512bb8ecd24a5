// Package handlers implements the JSON API surface over sessions, posters,
// settings and the creative assistant.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"anostudio/internal/assistant"
	"anostudio/internal/domain"
	"anostudio/internal/infra"
	"anostudio/internal/orchestrator"
)

// maxUploadBytes bounds image uploads. Gemini inline payloads top out well
// below this.
const maxUploadBytes = 15 << 20

// SettingsStore is the persisted app settings boundary.
type SettingsStore interface {
	Load(ctx context.Context) (domain.AppSettings, error)
	Save(ctx context.Context, settings domain.AppSettings) (domain.AppSettings, error)
}

type App struct {
	Sessions  *orchestrator.Manager
	Assistant *assistant.Assistant
	Settings  SettingsStore
	Assets    orchestrator.AssetStore
	Logger    infra.Logger
}

func NewApp(sessions *orchestrator.Manager, asst *assistant.Assistant, settings SettingsStore, assets orchestrator.AssetStore, logger infra.Logger) *App {
	return &App{Sessions: sessions, Assistant: asst, Settings: settings, Assets: assets, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}

// domainError maps the domain sentinels onto HTTP responses.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "session not found")
	case errors.Is(err, domain.ErrSessionBusy):
		a.error(w, http.StatusConflict, "busy", err.Error())
	case errors.Is(err, domain.ErrMissingSourceImage):
		a.error(w, http.StatusPreconditionFailed, "missing_image", err.Error())
	case errors.Is(err, domain.ErrMissingCredential):
		a.error(w, http.StatusPreconditionFailed, "missing_credential", err.Error())
	case errors.Is(err, domain.ErrMissingHeadline):
		a.error(w, http.StatusUnprocessableEntity, "missing_headline", err.Error())
	case errors.Is(err, domain.ErrNothingToUpscale):
		a.error(w, http.StatusUnprocessableEntity, "nothing_to_upscale", err.Error())
	case errors.Is(err, domain.ErrUnparsableRecommendation):
		a.error(w, http.StatusBadGateway, "unparsable_recommendation", err.Error())
	default:
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

// readImageUpload accepts either a multipart form with an "image" part or a
// raw request body with an image content type.
func readImageUpload(r *http.Request) (data []byte, mimeType string, err error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)

	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, "", err
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			return nil, "", err
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, "", err
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "image/png"
		}
		return data, mimeType, nil
	}

	if !strings.HasPrefix(mediaType, "image/") {
		return nil, "", errors.New("expected an image upload")
	}
	data, err = io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", errors.New("empty image upload")
	}
	return data, mediaType, nil
}

func (a *App) session(w http.ResponseWriter, id string) (*orchestrator.Session, bool) {
	session, err := a.Sessions.Get(id)
	if err != nil {
		a.domainError(w, err)
		return nil, false
	}
	return session, true
}
