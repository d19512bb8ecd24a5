package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"anostudio/internal/assistant"
	"anostudio/internal/domain"
	"anostudio/internal/middleware"
	"anostudio/internal/orchestrator"
)

// language picks the reply language: the persisted app setting when
// available, otherwise the locale the i18n middleware detected.
func (a *App) language(r *http.Request) string {
	settings, err := a.Settings.Load(r.Context())
	if err == nil && settings.Language != "" {
		return settings.Language
	}
	return middleware.LocaleFromContext(r.Context())
}

func (a *App) greeting(session *orchestrator.Session, poster bool, language string) string {
	return assistant.Greeting(session.Mode(), poster, session.Config().ProductName, language)
}

// GetChat returns the session's conversation, seeding the greeting on first
// read.
func (a *App) GetChat(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	poster := r.URL.Query().Get("view") == "poster"
	session.AppendChat(a.greeting(session, poster, a.language(r)))
	a.json(w, http.StatusOK, map[string]any{"messages": session.ChatHistory()})
}

// ResetChat clears the conversation and reseeds the greeting.
func (a *App) ResetChat(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	poster := r.URL.Query().Get("view") == "poster"
	session.ResetChat(a.greeting(session, poster, a.language(r)))
	a.json(w, http.StatusOK, map[string]any{"messages": session.ChatHistory()})
}

type chatRequest struct {
	Message string `json:"message"`
	Poster  bool   `json:"poster"`
}

// PostChat sends a user message to the creative assistant and records both
// sides of the exchange.
func (a *App) PostChat(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "message is required")
		return
	}
	language := a.language(r)
	greeting := a.greeting(session, req.Poster, language)
	session.AppendChat(greeting, domain.ChatMessage{Role: domain.RoleUser, Text: req.Message})

	var reply domain.ChatMessage
	if req.Poster {
		answer, err := a.Assistant.PosterRecommendations(r.Context(), session.PosterConfig(), req.Message, language)
		if err != nil {
			a.domainError(w, err)
			return
		}
		reply = domain.ChatMessage{Role: domain.RoleAssistant, Text: answer.Reasoning, PosterRec: &answer.Recommendation}
	} else {
		answer, err := a.Assistant.StyleRecommendations(r.Context(), session.Config(), session.Mode(), req.Message, language)
		if err != nil {
			a.domainError(w, err)
			return
		}
		reply = domain.ChatMessage{Role: domain.RoleAssistant, Text: answer.Reasoning, Recommendation: &answer.Recommendation}
	}
	session.AppendChat(greeting, reply)
	a.json(w, http.StatusOK, reply)
}

type applyRequest struct {
	Recommendation *domain.StyleRecommendation  `json:"recommendation,omitempty"`
	PosterRec      *domain.PosterRecommendation `json:"posterRecommendation,omitempty"`
}

// ApplyRecommendation merges an assistant recommendation into the session's
// configuration. Unrecognized style names leave their axis untouched.
func (a *App) ApplyRecommendation(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	language := a.language(r)

	switch {
	case req.Recommendation != nil:
		cfg := assistant.ApplyStyleRecommendation(session.Config(), session.Mode(), *req.Recommendation)
		if err := session.UpdateConfig(cfg); err != nil {
			a.error(w, http.StatusUnprocessableEntity, "invalid_config", err.Error())
			return
		}
		session.AppendChat(a.greeting(session, false, language),
			domain.ChatMessage{Role: domain.RoleAssistant, Text: assistant.AppliedMessage(language)})
		a.json(w, http.StatusOK, session.Config())
	case req.PosterRec != nil:
		cfg := assistant.ApplyPosterRecommendation(session.PosterConfig(), *req.PosterRec)
		if err := session.UpdatePosterConfig(cfg); err != nil {
			a.error(w, http.StatusUnprocessableEntity, "invalid_config", err.Error())
			return
		}
		session.AppendChat(a.greeting(session, true, language),
			domain.ChatMessage{Role: domain.RoleAssistant, Text: assistant.AppliedMessage(language)})
		a.json(w, http.StatusOK, session.PosterConfig())
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "no recommendation in body")
	}
}
