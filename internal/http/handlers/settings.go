package handlers

import (
	"encoding/json"
	"net/http"

	"anostudio/internal/domain"
)

func (a *App) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.Settings.Load(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("load settings")
		a.error(w, http.StatusInternalServerError, "internal", "could not load settings")
		return
	}
	a.json(w, http.StatusOK, settings)
}

func (a *App) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	saved, err := a.Settings.Save(r.Context(), settings)
	if err != nil {
		a.Logger.Error().Err(err).Msg("save settings")
		a.error(w, http.StatusInternalServerError, "internal", "could not save settings")
		return
	}
	a.json(w, http.StatusOK, saved)
}
