package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/salesupport/salesupport/pkg/i18n"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError writes the error envelope. The message is the code
// translated into the request's preferred language.
func respondWithError(w http.ResponseWriter, r *http.Request, catalog *i18n.Catalog, status int, code string) {
	message := code
	if catalog != nil {
		message = catalog.Translate(code, r.Header.Get("Accept-Language"))
	}
	respondWithJSON(w, status, map[string]interface{}{
		"error": map[string]string{"code": code, "message": message},
	})
}

// decodeJSON parses a request body into dst, limited to 1 MiB.
func decodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	return json.NewDecoder(r.Body).Decode(dst)
}
