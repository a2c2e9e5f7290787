package middleware

import (
	"net/http"

	"github.com/vfg2006/ad-projection-api/pkg/log"
	"github.com/vfg2006/ad-projection-api/pkg/utils"
)

// RequestIDHeader é o header usado para propagar o ID da requisição
const RequestIDHeader = "X-Request-ID"

// RequestID garante um ID curto por requisição, reaproveitando o enviado pelo cliente
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					log.L.WithError(err).Warn("Falha ao gerar ID da requisição")
				}
				requestID = id
			}

			if requestID != "" {
				w.Header().Set(RequestIDHeader, requestID)
			}

			next.ServeHTTP(w, r.WithContext(log.WithRequestID(r.Context(), requestID)))
		})
	}
}
