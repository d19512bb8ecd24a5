package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"anostudio/internal/domain"
	"anostudio/internal/orchestrator"
	"anostudio/internal/providers/genai"
)

var titleCaser = cases.Title(language.Und)

type createSessionRequest struct {
	Mode domain.Mode `json:"mode"`
}

type sessionView struct {
	ID              string                  `json:"id"`
	Mode            domain.Mode             `json:"mode"`
	Config          domain.GenerationConfig `json:"config"`
	PosterConfig    domain.PosterConfig     `json:"posterConfig"`
	Results         []domain.ResultItem     `json:"results"`
	PosterResults   []domain.ResultItem     `json:"posterResults"`
	HasSourceImage  bool                    `json:"hasSourceImage"`
	HasStyleImage   bool                    `json:"hasStyleImage"`
	HasPosterSource bool                    `json:"hasPosterSource"`
}

func (a *App) sessionView(s sessionSource) sessionView {
	return sessionView{
		ID:              s.ID(),
		Mode:            s.Mode(),
		Config:          s.Config(),
		PosterConfig:    s.PosterConfig(),
		Results:         s.Results(),
		PosterResults:   s.PosterResults(),
		HasSourceImage:  s.HasSourceImage(),
		HasStyleImage:   s.HasStyleImage(),
		HasPosterSource: s.HasPosterSource(),
	}
}

// sessionSource is the read side of a session, split out so views can be
// built without reaching into orchestrator internals.
type sessionSource interface {
	ID() string
	Mode() domain.Mode
	Config() domain.GenerationConfig
	PosterConfig() domain.PosterConfig
	Results() []domain.ResultItem
	PosterResults() []domain.ResultItem
	HasSourceImage() bool
	HasStyleImage() bool
	HasPosterSource() bool
}

func (a *App) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	settings, err := a.Settings.Load(r.Context())
	if err != nil {
		a.Logger.Warn().Err(err).Msg("load settings, using defaults")
		settings = domain.DefaultSettings()
	}
	session, err := a.Sessions.Create(req.Mode, settings)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.json(w, http.StatusCreated, a.sessionView(session))
}

func (a *App) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	a.json(w, http.StatusOK, a.sessionView(session))
}

func (a *App) DeleteSession(w http.ResponseWriter, r *http.Request) {
	a.Sessions.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// UploadSourceImage replaces the session's product photo and tries to
// identify the product from it. Identification is best effort; an upload
// never fails because the model could not name the product.
func (a *App) UploadSourceImage(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	data, mimeType, err := readImageUpload(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	session.SetSourceImage(data, mimeType)
	a.identifyProduct(r.Context(), session, session.SourceImage())
	a.json(w, http.StatusOK, a.sessionView(session))
}

// identifyProduct tries to name and classify the uploaded subject. Best
// effort only: a failed call leaves the session as it was.
func (a *App) identifyProduct(ctx context.Context, session *orchestrator.Session, img *genai.ImageInput) {
	if img == nil || session.Mode() == domain.ModePortrait {
		return
	}
	name, photoType, err := a.Assistant.IdentifyProduct(ctx, *img)
	if err != nil {
		a.Logger.Warn().Err(err).Str("session_id", session.ID()).Msg("product identification failed")
		return
	}
	cfg := session.Config()
	if photoType != cfg.PhotoType {
		cfg.SetPhotoType(photoType)
	}
	cfg.ProductName = titleCaser.String(strings.TrimSpace(name))
	if err := session.UpdateConfig(cfg); err != nil {
		a.Logger.Warn().Err(err).Str("session_id", session.ID()).Msg("apply identified product")
	}
}

func (a *App) UploadStyleImage(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	data, mimeType, err := readImageUpload(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	session.SetStyleImage(data, mimeType)
	a.json(w, http.StatusOK, a.sessionView(session))
}

func (a *App) RemoveStyleImage(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	session.ClearStyleImage()
	a.json(w, http.StatusOK, a.sessionView(session))
}

func (a *App) UpdateSessionConfig(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var cfg domain.GenerationConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := session.UpdateConfig(cfg); err != nil {
		a.error(w, http.StatusUnprocessableEntity, "invalid_config", err.Error())
		return
	}
	a.json(w, http.StatusOK, session.Config())
}

type generateRequest struct {
	Count int `json:"count"`
}

func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req generateRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	count := req.Count
	if count == 0 {
		settings, err := a.Settings.Load(r.Context())
		if err != nil {
			settings = domain.DefaultSettings()
		}
		count = settings.NumberOfResults
	}
	if err := session.GenerateBatch(r.Context(), count); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"results": session.Results()})
}

func (a *App) Upscale(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	failed, err := session.UpscaleBatch(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	resp := map[string]any{"results": session.Results(), "failed": failed}
	if failed > 0 {
		resp["warning"] = fmt.Sprintf("%d image(s) could not be upscaled and kept their original resolution", failed)
	}
	a.json(w, http.StatusOK, resp)
}

func (a *App) Results(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	a.json(w, http.StatusOK, map[string]any{"results": session.Results()})
}

func (a *App) DownloadResults(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	base := downloadBaseName(session.Config().ProductName)
	a.serveResultsZip(w, r, session.Results(), base)
}

// downloadBaseName derives a filename stem from the product name.
func downloadBaseName(productName string) string {
	name := strings.TrimSpace(productName)
	if name == "" {
		return "hasil-foto"
	}
	name = titleCaser.String(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, name)
	name = strings.Trim(name, "-")
	if name == "" {
		return "hasil-foto"
	}
	return name
}
