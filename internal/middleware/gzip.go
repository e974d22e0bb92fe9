package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/logger"
)

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gz     *gzip.Writer
	noBody bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	w.Header().Del("Content-Length")
	if status == http.StatusNoContent || status == http.StatusNotModified {
		w.noBody = true
		w.Header().Del("Content-Encoding")
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	return w.gz.Write(b)
}

// WithGzip decompresses gzip request bodies and compresses responses for
// clients that accept it.
func WithGzip() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Encoding") == "gzip" {
				gr, err := gzip.NewReader(r.Body)
				if err != nil {
					http.Error(w, "invalid gzip body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := gr.Close(); err != nil {
						logger.Log.Error("failed to close gzip reader", zap.Error(err))
					}
				}()
				r.Body = gr
				r.Header.Del("Content-Encoding")
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gz := gzipWriters.Get().(*gzip.Writer)
			gz.Reset(w)
			gw := &gzipResponseWriter{ResponseWriter: w, gz: gz}
			defer func() {
				if gw.noBody {
					gz.Reset(io.Discard)
				}
				if err := gz.Close(); err != nil {
					logger.Log.Error("failed to flush gzip response", zap.Error(err))
				}
				gzipWriters.Put(gz)
			}()

			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Add("Vary", "Accept-Encoding")
			next.ServeHTTP(gw, r)
		})
	}
}
