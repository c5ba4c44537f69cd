package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"vitrina.org/internal/audit"
	"vitrina.org/internal/catalog"
	"vitrina.org/internal/store"
)

type productListResponse struct {
	Items []store.Product `json:"items"`
	Total int             `json:"total"`
}

func (a *API) handleProductsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.listProducts(w, r)
	case http.MethodPost:
		a.createProduct(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleProductResource(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/products/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.getProduct(w, r, id)
	case http.MethodPut:
		a.updateProduct(w, r, id)
	case http.MethodDelete:
		a.deleteProduct(w, r, id)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.catalog.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if q != "" || category != "" {
		products = catalog.Filter(products, q, category)
	}

	writeJSON(w, http.StatusOK, productListResponse{
		Items: products,
		Total: len(products),
	})
}

func (a *API) getProduct(w http.ResponseWriter, r *http.Request, id string) {
	p, err := a.catalog.Get(r.Context(), id)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) createProduct(w http.ResponseWriter, r *http.Request) {
	var draft catalog.Draft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, fieldErrs, err := a.catalog.Create(r.Context(), draft)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeValidationError(w, r, fieldErrs)
		return
	}

	_ = audit.LogEvent(r.Context(), "catalog.product.create", map[string]any{
		"product_id": p.ID,
		"name":       p.Name,
		"category":   p.Category,
	})

	w.Header().Set("Location", "/v1/products/"+p.ID)
	writeJSON(w, http.StatusCreated, p)
}

func (a *API) updateProduct(w http.ResponseWriter, r *http.Request, id string) {
	var draft catalog.Draft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, fieldErrs, err := a.catalog.Update(r.Context(), id, draft)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeValidationError(w, r, fieldErrs)
		return
	}

	_ = audit.LogEvent(r.Context(), "catalog.product.update", map[string]any{
		"product_id": p.ID,
	})
	writeJSON(w, http.StatusOK, p)
}

func (a *API) deleteProduct(w http.ResponseWriter, r *http.Request, id string) {
	if err := a.catalog.Delete(r.Context(), id); err != nil {
		handleCatalogError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "catalog.product.delete", map[string]any{
		"product_id": id,
	})
	w.WriteHeader(http.StatusNoContent)
}

func handleCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func writeValidationError(w http.ResponseWriter, r *http.Request, fieldErrs catalog.FieldErrors) {
	payload := map[string]any{
		"error":  "validation failed",
		"fields": fieldErrs,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, http.StatusBadRequest, payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	reader := http.MaxBytesReader(w, r.Body, 1<<20)
	defer reader.Close()
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	payload := map[string]any{
		"error": msg,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
