package dispatch

import (
	"errors"
	"net/http"
	"net/url"
)

// MaxFormMemory bounds the in-memory part of a multipart submission.
const MaxFormMemory = 1 << 20

// ParseParameters parses the query string and the body of r, accepting both
// urlencoded and multipart submissions. It is safe to call more than once.
func ParseParameters(r *http.Request) error {
	err := r.ParseMultipartForm(MaxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// Parameter returns the first value submitted for name, looking at the query
// string before the body. It returns nil when name was not submitted at all;
// an empty value is still a submitted value. ParseParameters must run first
// for body values to be visible.
func Parameter(r *http.Request, name string) *string {
	if v := first(r.URL.Query(), name); v != nil {
		return v
	}
	return first(r.PostForm, name)
}

func first(values url.Values, key string) *string {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return nil
	}
	return &v[0]
}
