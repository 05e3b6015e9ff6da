package handler

import (
	"net/http"

	"github.com/templui/foldervault/internal/service"
)

type MessageHandler struct {
	folderService  *service.FolderService
	messageService *service.MessageService
}

func NewMessageHandler(folderService *service.FolderService, messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{
		folderService:  folderService,
		messageService: messageService,
	}
}

func (h *MessageHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
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

	message, err := h.messageService.Add(r.Context(), folder, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":         message.ID,
		"created_at": message.CreatedAt,
	})
}

// List reads the password from the query string since GET has no body.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	password := r.URL.Query().Get("password")

	folder, err := h.folderService.ResolveAuthorized(r.Context(), r.PathValue("id"), password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	messages, err := h.messageService.List(r.Context(), folder)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"messages":   messages,
		"expires_at": folder.ExpiresAt(),
	})
}

func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
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

	updatedAt, err := h.messageService.Update(r.Context(), folder, r.PathValue("msgid"), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"updated_at": updatedAt})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	password, err := passwordFromBodyOrQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	folder, err := h.folderService.ResolveAuthorized(r.Context(), r.PathValue("id"), password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	err = h.messageService.Delete(r.Context(), folder, r.PathValue("msgid"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
