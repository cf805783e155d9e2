package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type errorResponse struct {
	Message   string `json:"message"`
	RequestId string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func writeError(w http.ResponseWriter, r *http.Request, code int, message string) {
	if code >= http.StatusInternalServerError {
		w.Header().Set("Retry-After", "3")
		LoggerFrom(r.Context()).Error("Request failed", "status", code, "message", message)
	}

	writeJSON(w, code, errorResponse{Message: message, RequestId: TraceIdFrom(r.Context())})
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(dst)
}

// optionalInt64 parses an optional query parameter; an empty value yields nil.
func optionalInt64(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == `` {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func optionalInt(r *http.Request, name string) (*int, error) {
	value, err := optionalInt64(r, name)
	if err != nil || value == nil {
		return nil, err
	}

	v := int(*value)
	return &v, nil
}

// listParam accepts both repeated parameters and comma separated values.
func listParam(r *http.Request, name string) []string {
	var values []string

	for _, raw := range r.URL.Query()[name] {
		for _, v := range strings.Split(raw, `,`) {
			if v = strings.TrimSpace(v); v != `` {
				values = append(values, v)
			}
		}
	}

	return values
}
