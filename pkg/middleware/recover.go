package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/modece/storefront/pkg/logger"
	"github.com/modece/storefront/pkg/response"
)

// Recovery catches any panic in downstream handlers, logs the stack trace
// with the request id, and returns a 500 envelope. http.ErrAbortHandler is
// re-raised so the server can drop the connection as net/http intends.
// Wire it outside Logger so it also catches panics in the logging
// middleware itself.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				logger.WithCtx(r.Context()).Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
