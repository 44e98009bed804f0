package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"static-server/internal/logging"
	"static-server/internal/metrics"
)

// ResponseWriter wrapper to capture status code and bytes written
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
	wroteHeader  bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// AccessLog is the record emitted for every request that reaches the
// main server. Field names are part of the log contract; downstream
// collectors parse them, so they must not change.
type AccessLog struct {
	URI         string `json:"uri"`
	Method      string `json:"method"`
	RequestBody string `json:"req_body"`
	StatusCode  int    `json:"status_code"`
}

// Logger returns middleware that buffers the request body, validates it
// as UTF-8, and emits one AccessLog record per request at debug level.
//
// The body is read in full before the inner handler runs and replayed
// through a fresh reader, so the handler observes the original bytes.
// A body that cannot be read is answered with 400 and no record is
// emitted. A body that is not valid UTF-8 is answered with 400 without
// invoking the inner handler; the record is still emitted, carrying a
// lossy decode of the bytes.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logging.Warn("Failed to read request body for %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "unable to read request body", http.StatusBadRequest)
			return
		}
		metrics.RequestBodyBytesTotal.Add(float64(len(body)))

		record := AccessLog{
			URI:    requestURI(r),
			Method: r.Method,
		}

		if !utf8.Valid(body) {
			metrics.RequestBodyDecodeErrorsTotal.Inc()
			record.RequestBody = strings.ToValidUTF8(string(body), "�")
			record.StatusCode = http.StatusBadRequest
			http.Error(w, "request body is not valid UTF-8", http.StatusBadRequest)
			emitRecord(record)
			return
		}
		record.RequestBody = string(body)

		r.Body = io.NopCloser(bytes.NewReader(body))
		wrapped := newResponseWriter(w)

		next.ServeHTTP(wrapped, r)

		record.StatusCode = wrapped.statusCode
		emitRecord(record)
	})
}

// emitRecord serializes the record and writes it as a single debug line.
// json.Marshal escapes control characters, so a body containing newlines
// or terminal escapes cannot forge additional log lines.
func emitRecord(record AccessLog) {
	data, err := json.Marshal(record)
	if err != nil {
		logging.Error("Failed to encode access record for %s %s: %v", record.Method, record.URI, err)
		return
	}
	logging.Debug("%s", data)
}

// requestURI returns the request target as sent by the client,
// including the query string.
func requestURI(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
