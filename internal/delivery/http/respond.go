package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"fmt"
	"strconv"

	"github.com/samber/mo"
	"github.com/tidwall/gjson"
)

const (
	msgInternalError  = "Internal Server Error"
	msgInvalidBody    = "Invalid request body"
	maxRequestBodyLen = 1 << 20
)

var errInvalidBody = errors.New("request body is not a JSON object")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeStoreError logs the underlying failure and answers with a generic 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, msg string, err error, attrs ...any) {
	attrs = append(attrs, "path", r.URL.Path, "err", err)
	slog.Error(msg, attrs...)
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// decodeFields extracts the named fields from a JSON object body.
// Values are passed through untouched: absent fields are left out of the map
// and bind as NULL, and type mismatches are for the store to reject.
// An empty body counts as an empty object.
func decodeFields(w http.ResponseWriter, r *http.Request, fields []string) (map[string]any, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyLen))
	if err != nil {
		return nil, err
	}

	values := make(map[string]any, len(fields))
	if len(bytes.TrimSpace(body)) == 0 {
		return values, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, errInvalidBody
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, errInvalidBody
	}

	for _, f := range fields {
		if v := doc.Get(f); v.Exists() {
			values[f] = fieldValue(v)
		}
	}
	return values, nil
}

func fieldValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.True, gjson.False:
		return v.Bool()
	case gjson.Number:
		if i, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return i
		}
		return v.Float()
	case gjson.String:
		return v.Str
	default:
		// Nested objects and arrays reach the store as their JSON text.
		return v.Raw
	}
}

// optionalString treats a missing or null field as absent. Other scalars keep
// their JSON text.
func optionalString(v any) mo.Option[string] {
	switch v := v.(type) {
	case nil:
		return mo.None[string]()
	case string:
		return mo.Some(v)
	default:
		return mo.Some(fmt.Sprint(v))
	}
}

// truthy reads a flag sent as a boolean, a number or a string.
func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return false
	}
}
