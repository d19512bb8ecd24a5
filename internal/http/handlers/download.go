package handlers

import (
	"fmt"
	"net/http"

	"anostudio/internal/domain"
	"anostudio/internal/storage"
	"anostudio/pkg/zip"
)

// serveResultsZip bundles the completed slots into a zip. Upscaled
// renditions win over the originals when present.
func (a *App) serveResultsZip(w http.ResponseWriter, r *http.Request, results []domain.ResultItem, base string) {
	var assets []zip.Asset
	for i, item := range results {
		if item.Status != domain.ResultCompleted || item.Image == nil {
			continue
		}
		key := item.Image.StorageKey
		if item.UpscaledKey != "" {
			key = item.UpscaledKey
		}
		data, err := a.Assets.Read(r.Context(), key)
		if err != nil {
			a.Logger.Error().Err(err).Str("key", key).Msg("read asset for download")
			a.error(w, http.StatusInternalServerError, "internal", "could not read a generated image")
			return
		}
		assets = append(assets, zip.Asset{
			Filename: fmt.Sprintf("%s-%02d%s", base, i+1, storage.ExtensionForMIME(item.Image.MIME)),
			MIME:     item.Image.MIME,
			Data:     data,
		})
	}
	if len(assets) == 0 {
		a.error(w, http.StatusUnprocessableEntity, "nothing_to_download", "no completed images in this session")
		return
	}
	archive := zip.ArchiveAssets(assets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
