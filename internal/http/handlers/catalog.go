package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/logx"
	"vibe-shop/internal/service/catalog"
)

const (
	uploadLimit  = 32 << 20
	uploadMemory = 8 << 20
)

// CatalogHandler serves the product list and the admin catalog editor.
type CatalogHandler struct {
	logger logx.Logger
	uc     catalogUsecase
}

// NewCatalogHandler wires a catalogUsecase into HTTP handlers.
func NewCatalogHandler(logger logx.Logger, uc catalogUsecase) *CatalogHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CatalogHandler{logger: logger, uc: uc}
}

// Products handles GET /products.
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.Products(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if list == nil {
		list = []catalog.Record{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// AdminProducts handles GET /admin/products.
func (h *CatalogHandler) AdminProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.AdminProducts(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if list == nil {
		list = []catalog.AdminProduct{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// UpdateProduct handles PUT /admin/products/{index}. Keys other than
// name, price and description are ignored.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid index")
		return
	}
	var body map[string]json.RawMessage
	if ok := decodeJSON(h.logger, w, r, &body); !ok {
		return
	}
	patch := catalog.ProductPatch{
		Name:        body["name"],
		Price:       body["price"],
		Description: body["description"],
	}

	err = h.uc.UpdateProduct(r.Context(), index, patch)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, statusOK)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product index out of range")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UploadImages handles POST /admin/products/{pid}/images with multipart "files".
// The replace query parameter defaults to true.
func (h *CatalogHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	pid, err := idFromURL(r, "pid")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid product id")
		return
	}
	replace := true
	if s := r.URL.Query().Get("replace"); s != "" {
		replace, err = strconv.ParseBool(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid replace")
			return
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, uploadLimit)
	if err := r.ParseMultipartForm(uploadMemory); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "files required")
		return
	}

	uploads := make([]catalog.Upload, 0, len(headers))
	closers := make([]io.Closer, 0, len(headers))
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			h.logger.Warn("open upload failed", logx.String("filename", fh.Filename), logx.Err(err))
			continue
		}
		closers = append(closers, f)
		uploads = append(uploads, catalog.Upload{Filename: fh.Filename, Content: f})
	}

	saved, err := h.uc.SaveImages(r.Context(), pid, uploads, replace)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if saved == nil {
		saved = []string{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string][]string{"saved": saved})
}

// DeleteImages handles DELETE /admin/products/{pid}/images.
func (h *CatalogHandler) DeleteImages(w http.ResponseWriter, r *http.Request) {
	pid, err := idFromURL(r, "pid")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid product id")
		return
	}
	n, err := h.uc.DeleteImages(r.Context(), pid)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]int{"deleted": n})
}

// DeleteImage handles DELETE /admin/products/{pid}/images/{filename}.
func (h *CatalogHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	pid, err := idFromURL(r, "pid")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid product id")
		return
	}
	filename := chi.URLParam(r, "filename")

	err = h.uc.DeleteImage(r.Context(), pid, filename)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"deleted": filename})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "file not found")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "filename does not match product id")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
