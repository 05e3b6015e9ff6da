package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/templui/foldervault/internal/expiry"
	"github.com/templui/foldervault/internal/service"
)

// Request bodies. Passwords are passed to the services exactly as received;
// a missing password decodes to "" and simply fails verification.

// createFolderRequest is the body of POST /api/folders. Password is required,
// name and years are optional.
type createFolderRequest struct {
	Name     string       `json:"name"`
	Password string       `json:"password"`
	Years    expiry.Years `json:"years"`
}

// passwordRequest is the body of verify, message delete and token revoke.
type passwordRequest struct {
	Password string `json:"password"`
}

// contentRequest is the body of message add and update. Both fields are required.
type contentRequest struct {
	Password string `json:"password"`
	Content  string `json:"content"`
}

// shareRequest is the body of POST /api/folders/{id}/share. Years is optional.
type shareRequest struct {
	Password string       `json:"password"`
	Years    expiry.Years `json:"years"`
}

var (
	errInvalidBody  error = &service.Error{Kind: service.ErrValidation, Message: "invalid request body"}
	errBodyTooLarge error = &service.Error{Kind: service.ErrValidation, Message: "request body too large"}
)

// decodeJSON decodes the request body into dst. An empty body leaves dst at
// its zero value.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errBodyTooLarge
	}
	if err != nil {
		return errInvalidBody
	}

	return nil
}

// passwordFromBodyOrQuery reads the password from a JSON body, falling back
// to the ?password= query parameter.
func passwordFromBodyOrQuery(r *http.Request) (string, error) {
	var req passwordRequest
	err := decodeJSON(r, &req)
	if err != nil {
		return "", err
	}

	if req.Password != "" {
		return req.Password, nil
	}
	return r.URL.Query().Get("password"), nil
}
