package handler

import (
	"net/http"

	"github.com/templui/foldervault/internal/service"
)

type FolderHandler struct {
	folderService *service.FolderService
}

func NewFolderHandler(folderService *service.FolderService) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
	}
}

func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	folder, err := h.folderService.Create(r.Context(), req.Name, req.Password, req.Years)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"folderId":   folder.ID,
		"created_at": folder.CreatedAt,
		"expires_at": folder.ExpiresAt,
	})
}

// Verify lets a client check a password before opening the folder.
func (h *FolderHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	folder, err := h.folderService.ResolveAuthorized(r.Context(), r.PathValue("id"), req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"expires_at": folder.ExpiresAt(),
	})
}
