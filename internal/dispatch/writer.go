package dispatch

import "net/http"

// includeWriter lets an included resource write body bytes only.
type includeWriter struct {
	w      http.ResponseWriter
	header http.Header
}

func newIncludeWriter(w http.ResponseWriter) *includeWriter {
	return &includeWriter{
		w:      w,
		header: make(http.Header),
	}
}

func (iw *includeWriter) Header() http.Header {
	return iw.header
}

func (iw *includeWriter) WriteHeader(int) {}

func (iw *includeWriter) Write(p []byte) (int, error) {
	return iw.w.Write(p)
}

// Unwrap is used by http.ResponseController.
func (iw *includeWriter) Unwrap() http.ResponseWriter {
	return iw.w
}
