package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/golfcup/internal/api/apierr"
	"github.com/mcoot/golfcup/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// A panicking handler yields the standard JSON internal error.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
