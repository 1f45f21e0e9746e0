// Package handlers contains the HTTP layer: request decoding, identity
// extraction and mapping of service results onto JSON responses.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akeray/akeray-api/internal/httpx"
)

// decodeJSON decodes the request body into dst, writing a 400 on malformed
// JSON. Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return false
	}
	return true
}
