package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-daily-diary/internal/app"
	"github.com/go-chi/chi/v5/middleware"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// compressResponses gzips JSON, text and markdown responses for clients
// that accept it.
var compressResponses = middleware.Compress(gzip.DefaultCompression,
	"application/json", "text/plain", "text/markdown")

// withGZip decodes gzip request bodies and compresses responses.
func withGZip(next http.Handler) http.Handler {
	return compressResponses(decompressRequests(next))
}

// decompressRequests transparently inflates bodies sent with
// "Content-Encoding: gzip". Malformed gzip data answers 400.
func decompressRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			http.Error(w, app.MsgInvalidGzip, http.StatusBadRequest)
			return
		}

		r.Body = &pooledReadCloser{Reader: gzipReader, release: func() {
			gzipReader.Close()
			gzipReaderPool.Put(gzipReader)
		}}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type pooledReadCloser struct {
	io.Reader
	release func()
	once    sync.Once
}

func (p *pooledReadCloser) Close() error {
	p.once.Do(p.release)
	return nil
}
