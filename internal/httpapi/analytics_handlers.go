package httpapi

import (
	"net/http"

	"vitrina.org/internal/catalog"
)

type statsResponse struct {
	Overview   catalog.Overview        `json:"overview"`
	Categories []catalog.CategoryCount `json:"categories"`
	Sales      []catalog.SalesPoint    `json:"sales"`
}

// handleAnalytics recomputes all six derived views from the current catalog
// snapshot on every call.
func (a *API) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	products, err := a.catalog.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, a.analytics.Report(products))
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	products, err := a.catalog.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Overview:   catalog.Summarize(products),
		Categories: catalog.Categories(products),
		Sales:      catalog.SalesSeries(products),
	})
}
