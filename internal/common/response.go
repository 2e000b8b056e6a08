package common

import (
	"encoding/json"
	"net/http"
	"net/url"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Redirect issues a see-other redirect, optionally carrying a flash notice
// as a query parameter so it survives the round trip.
func Redirect(w http.ResponseWriter, r *http.Request, path, notice string) {
	redirectWithFlash(w, r, path, "notice", notice)
}

// RedirectWithError is Redirect with the message rendered as an error banner
// instead of a notice.
func RedirectWithError(w http.ResponseWriter, r *http.Request, path, message string) {
	redirectWithFlash(w, r, path, "error", message)
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, path, key, value string) {
	if value != "" {
		sep := "?"
		if u, err := url.Parse(path); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		path = path + sep + key + "=" + url.QueryEscape(value)
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
