package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ferdiebergado/leavekit/internal/pkg/message"
	"github.com/ferdiebergado/leavekit/internal/pkg/web"
)

// CheckContentType rejects JSON endpoints called with a non-JSON body.
// Requests without a body (GET, DELETE) pass through.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodDelete || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		if !strings.HasPrefix(contentType, web.MimeJSON) {
			web.Fail(w, http.StatusNotAcceptable, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
