package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

const authRealm = `Bearer realm="showroom"`

// ErrorHandler renders errors the generated server could not map to a
// declared response: failed authentication, undecodable requests and
// unexpected handler errors. Bodies use the same {"code","message"} shape as
// declared errors.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var (
		secErr  *ogenerrors.SecurityError
		ogenErr ogenerrors.Error
	)
	switch {
	case errors.As(err, &secErr):
		if errors.Is(err, errInvalidToken) {
			w.Header().Set("WWW-Authenticate", authRealm+`, error="invalid_token"`)
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		w.Header().Set("WWW-Authenticate", authRealm)
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.As(err, &ogenErr) && ogenErr.Code() < http.StatusInternalServerError:
		zctx.From(ctx).Debug("Rejected request", zap.Error(err))
		writeError(w, ogenErr.Code(), strings.ToLower(http.StatusText(ogenErr.Code())))
	default:
		zctx.From(ctx).Error("Request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Int(status) })
		e.Field("message", func(e *jx.Encoder) { e.Str(msg) })
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
