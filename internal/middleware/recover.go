package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/problem"
)

// Recover reemplaza chimw.Recoverer: loguea el panic con nuestro logger y responde problem+json.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil || rec == http.ErrAbortHandler {
					if rec != nil {
						panic(rec)
					}
					return
				}
				log.Error("panic recovered", map[string]any{
					"panic":  fmt.Sprint(rec),
					"path":   r.URL.Path,
					"method": r.Method,
					"stack":  string(debug.Stack()),
				})
				problem.Write(w, r, problem.Internal)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
