package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hospitalinventory/m/domain"
	"hospitalinventory/m/internal/images"
	"hospitalinventory/m/internal/store"
)

const maxUploadSize = 32 << 20

var errInvalidFileType = errors.New("invalid file type")

func (h *Handler) listResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.store.ListResources(r.Context())
	if err != nil {
		h.serverError(w, r, "unable to list resources", err)
		return
	}
	respondJSON(w, http.StatusOK, resources)
}

func (h *Handler) getResource(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	resource, err := h.store.GetResource(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Resource not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to fetch resource", err)
		return
	}
	respondJSON(w, http.StatusOK, resource)
}

// resourceForm reads name, section and the optional image part.
func resourceForm(r *http.Request) (name, section string, file multipart.File, header *multipart.FileHeader, err error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", "", nil, nil, err
	}
	name = strings.TrimSpace(r.FormValue("name"))
	section = strings.TrimSpace(r.FormValue("section"))
	file, header, err = r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return name, section, nil, nil, nil
	}
	return name, section, file, header, err
}

// saveImage stores the upload under a unique key derived from its
// sanitized name.
func (h *Handler) saveImage(r *http.Request, file multipart.File, header *multipart.FileHeader) (string, error) {
	filename := images.SecureFilename(header.Filename)
	if !images.Allowed(filename) {
		return "", errInvalidFileType
	}
	filename = images.UniqueName(filename)
	if err := h.images.Save(r.Context(), filename, file); err != nil {
		return "", err
	}
	return filename, nil
}

func (h *Handler) createResource(w http.ResponseWriter, r *http.Request) {
	name, section, file, header, err := resourceForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	if file != nil {
		defer file.Close()
	}
	if name == "" || section == "" || file == nil {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	filename, err := h.saveImage(r, file, header)
	if errors.Is(err, errInvalidFileType) {
		respondError(w, http.StatusBadRequest, "Invalid file type")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to store image", err)
		return
	}

	resource, err := h.store.CreateResource(r.Context(), domain.Resource{Name: name, Section: section, ImagePath: filename})
	if err != nil {
		h.dropImage(r, filename)
		h.serverError(w, r, "unable to create resource", err)
		return
	}
	respondJSON(w, http.StatusCreated, resource)
}

func (h *Handler) updateResource(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	name, section, file, header, err := resourceForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	if file != nil {
		defer file.Close()
	}
	if name == "" || section == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	current, err := h.store.GetResource(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Resource not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to fetch resource", err)
		return
	}

	updated := domain.Resource{ID: id, Name: name, Section: section, ImagePath: current.ImagePath}
	if file != nil {
		filename, err := h.saveImage(r, file, header)
		if errors.Is(err, errInvalidFileType) {
			respondError(w, http.StatusBadRequest, "Invalid file type")
			return
		}
		if err != nil {
			h.serverError(w, r, "unable to store image", err)
			return
		}
		updated.ImagePath = filename
	}

	err = h.store.UpdateResource(r.Context(), updated)
	if err != nil && updated.ImagePath != current.ImagePath {
		h.dropImage(r, updated.ImagePath)
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Resource not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to update resource", err)
		return
	}
	if updated.ImagePath != current.ImagePath {
		h.dropImage(r, current.ImagePath)
	}
	respondMessage(w, http.StatusOK, "Resource updated successfully")
}

func (h *Handler) deleteResource(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	resource, err := h.store.DeleteResource(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Resource not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to delete resource", err)
		return
	}
	h.dropImage(r, resource.ImagePath)
	h.log.Info(r.Context(), "resource deleted", "resource_id", id)
	respondMessage(w, http.StatusOK, "Resource deleted successfully")
}

// dropImage removes a stored image. A failure is only logged.
func (h *Handler) dropImage(r *http.Request, filename string) {
	if filename == "" {
		return
	}
	if err := h.images.Delete(r.Context(), filename); err != nil {
		h.log.Warn(r.Context(), "unable to remove image", "image", filename, "error", err)
	}
}

func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	rc, err := h.images.Open(r.Context(), filename)
	if errors.Is(err, images.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Image not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "unable to open image", err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", images.ContentType(filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.log.Warn(r.Context(), "image stream interrupted", "image", filename, "error", err)
	}
}
