package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Auth проверяет bearer токен по bcrypt хешу из конфигурации.
type Auth struct {
	hash []byte
	log  *slog.Logger
}

func New(tokenHash string, log *slog.Logger) *Auth {
	return &Auth{
		hash: []byte(strings.TrimSpace(tokenHash)),
		log:  log.With("component", "auth_middleware"),
	}
}

func (a *Auth) Enabled() bool {
	return len(a.hash) > 0
}

// Middleware возвращает nil, если хеш не задан: Container такие пропускает.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	if !a.Enabled() {
		return nil
	}
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			a.log.Warn("missing bearer token", "path", ctx.URL().Path)
			a.unauthorized(ctx)
			return
		}

		if err := bcrypt.CompareHashAndPassword(a.hash, []byte(token)); err != nil {
			a.log.Warn("invalid bearer token", "path", ctx.URL().Path)
			a.unauthorized(ctx)
			return
		}

		next(ctx)
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(http.StatusUnauthorized)

	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
	if err != nil {
		a.log.Error("failed to encode auth error", "error", err)
	}
}
