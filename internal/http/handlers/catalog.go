package handlers

import (
	"net/http"

	"anostudio/internal/catalog"
	"anostudio/internal/domain"
)

// ProductTypes lists the selectable product or subject types for a mode.
func (a *App) ProductTypes(w http.ResponseWriter, r *http.Request) {
	mode := domain.Mode(r.URL.Query().Get("mode"))
	var types []catalog.ProductTypeInfo
	switch mode {
	case domain.ModeFood:
		types = catalog.FoodProductTypes()
	case domain.ModePortrait:
		types = catalog.PortraitSubjectTypes()
	case domain.ModeMarketing, "":
		types = catalog.MarketingProductTypes()
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "unknown mode")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"productTypes": types})
}

// StyleOptions returns the style axes available for a product type.
func (a *App) StyleOptions(w http.ResponseWriter, r *http.Request) {
	pt := catalog.ProductType(r.URL.Query().Get("photoType"))
	if !catalog.KnownProductType(pt) {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown photoType")
		return
	}
	a.json(w, http.StatusOK, catalog.OptionsFor(catalog.CategoryOf(pt)))
}

// PosterOptions returns the poster designer catalogs.
func (a *App) PosterOptions(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"themes":        catalog.PosterThemes(),
		"colorPalettes": catalog.ColorPalettes(),
		"fontStyles":    catalog.FontStyles(),
	})
}
