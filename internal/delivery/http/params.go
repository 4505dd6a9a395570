package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/1230harry/commercial-db-api/internal/entity"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// pathID reads the {id} URL parameter. Only positive integers are valid identifiers.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parsePage reads page and limit. Values without a leading positive integer
// fall back to the defaults; there is no upper bound.
func parsePage(q url.Values) entity.Page {
	return entity.Page{
		Number: positiveInt(q.Get("page"), defaultPage),
		Size:   positiveInt(q.Get("limit"), defaultPageSize),
	}
}

// positiveInt reads the leading integer of s, so "2abc" and "2.5" both give 2.
func positiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(leadingInt(s))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func leadingInt(s string) string {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
