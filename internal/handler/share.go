package handler

import (
	"net/http"

	"github.com/templui/foldervault/internal/service"
)

type ShareHandler struct {
	folderService *service.FolderService
	shareService  *service.ShareService
}

func NewShareHandler(folderService *service.FolderService, shareService *service.ShareService) *ShareHandler {
	return &ShareHandler{
		folderService: folderService,
		shareService:  shareService,
	}
}

func (h *ShareHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
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

	token, err := h.shareService.Issue(r.Context(), folder, req.Years)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":      token.Token,
		"expires_at": token.ExpiresAt,
	})
}

// Messages is the password-less read through a share token.
func (h *ShareHandler) Messages(w http.ResponseWriter, r *http.Request) {
	token, messages, err := h.shareService.ReadViaToken(r.Context(), r.PathValue("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"messages":   messages,
		"expires_at": token.ExpiresAt,
	})
}

func (h *ShareHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	password, err := passwordFromBodyOrQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	err = h.shareService.Revoke(r.Context(), r.PathValue("token"), password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
