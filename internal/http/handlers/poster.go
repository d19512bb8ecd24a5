package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"anostudio/internal/domain"
)

// UploadPosterSource replaces the poster's base image with a fresh upload.
func (a *App) UploadPosterSource(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	data, mimeType, err := readImageUpload(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	session.SetPosterSource(data, mimeType)
	if session.Config().ProductName == "" {
		a.identifyProduct(r.Context(), session, session.PosterSource())
	}
	a.json(w, http.StatusOK, a.sessionView(session))
}

type posterFromResultRequest struct {
	Index int `json:"index"`
}

// PosterSourceFromResult reuses a completed generation slot as the poster's
// base image.
func (a *App) PosterSourceFromResult(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req posterFromResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := session.SetPosterSourceFromResult(r.Context(), req.Index); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, a.sessionView(session))
}

func (a *App) UpdatePosterConfig(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var cfg domain.PosterConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := session.UpdatePosterConfig(cfg); err != nil {
		a.error(w, http.StatusUnprocessableEntity, "invalid_config", err.Error())
		return
	}
	a.json(w, http.StatusOK, session.PosterConfig())
}

func (a *App) GeneratePoster(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := session.GeneratePoster(r.Context()); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"results": session.PosterResults()})
}

func (a *App) PosterResults(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	a.json(w, http.StatusOK, map[string]any{"results": session.PosterResults()})
}

func (a *App) DownloadPosters(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	base := downloadBaseName(session.Config().ProductName)
	a.serveResultsZip(w, r, session.PosterResults(), fmt.Sprintf("%s-poster", base))
}

type posterCopyResponse struct {
	Applied bool                `json:"applied"`
	Config  domain.PosterConfig `json:"config"`
}

// SuggestPosterCopy drafts initial headline, body and call-to-action text
// for the identified product. It fires at most once per product name and
// never overwrites copy the user already typed.
func (a *App) SuggestPosterCopy(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	name := session.Config().ProductName
	if !session.ClaimPosterCopy(name) {
		a.json(w, http.StatusOK, posterCopyResponse{Applied: false, Config: session.PosterConfig()})
		return
	}
	copyText, err := a.Assistant.InitialPosterCopy(r.Context(), name, a.language(r))
	if err != nil {
		// Drafting copy is an enrichment, not a prerequisite. Log and move on.
		a.Logger.Warn().Err(err).Str("session_id", session.ID()).Msg("initial poster copy failed")
		a.json(w, http.StatusOK, posterCopyResponse{Applied: false, Config: session.PosterConfig()})
		return
	}
	session.ApplyPosterCopy(copyText)
	a.json(w, http.StatusOK, posterCopyResponse{Applied: true, Config: session.PosterConfig()})
}
