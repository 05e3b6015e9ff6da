package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Compress gzips responses for clients that send Accept-Encoding: gzip.
// Bodies under gzhttp's default minimum size pass through untouched.
func Compress(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
