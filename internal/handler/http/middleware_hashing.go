package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
)

// HashHeader carries the hex HMAC-SHA256 of a signed request body.
const HashHeader = "HashSHA256"

// entryHashing checks the HashSHA256 signature of the request body when
// request signing is enabled. Without a signer it is a pass-through.
func (h *Handler) entryHashing(next http.Handler) http.Handler {
	if h.signer == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		log.Debug().Str("func", "*Handler.entryHashing").Msg("checking hash begins")

		signature := r.Header.Get(HashHeader)
		if signature == "" {
			log.Error().Str("func", "*Handler.entryHashing").Msg("no signature provided")
			http.Error(w, ErrMissingSignature.Error(), http.StatusBadRequest)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.entryHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.signer.Verify(body, signature) {
			log.Error().Str("func", "*Handler.entryHashing").
				Str("hash from request", signature).
				Str("hashed body", h.signer.Sign(body)).
				Msg("hashes are not equal")
			http.Error(w, ErrInvalidSignature.Error(), http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.entryHashing").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
