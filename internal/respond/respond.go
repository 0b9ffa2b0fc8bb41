// Package respond holds shared HTTP response helpers: router-level fallback
// handlers, panic recovery, and the mapping from Breeze service errors to
// huma status errors.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/tkoski/breeze-bridge/internal/platform/logging"
	"github.com/tkoski/breeze-bridge/internal/service/breeze"
)

// errorBody matches huma's error model so router-level responses look the
// same as handler-level ones.
type errorBody struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, detail string) error {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(errorBody{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}

// NotFoundHandler renders a problem-detail 404 for unrouted paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := writeError(w, http.StatusNotFound, "resource not found"); err != nil {
			applog.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler renders a problem-detail 405 with an Allow header.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		if err := writeError(w, http.StatusMethodNotAllowed, "method not allowed"); err != nil {
			applog.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into problem-detail 500 responses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					applog.LogError(r.Context(), "panic recovered", err,
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					if writeErr := writeError(w, http.StatusInternalServerError, "internal server error"); writeErr != nil {
						applog.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// MapServiceError translates a Breeze service error into a huma status
// error. Bad parameters are the caller's fault; everything else surfaces the
// upstream dependency.
func MapServiceError(err error) error {
	var svcErr *breeze.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case breeze.ErrorKindBadParameter:
			return huma.Error422UnprocessableEntity(svcErr.Error())
		case breeze.ErrorKindConfig:
			return huma.Error500InternalServerError("service misconfigured")
		case breeze.ErrorKindAPI:
			if svcErr.Status == http.StatusNotFound {
				return huma.Error404NotFound("resource not found")
			}
			return huma.Error502BadGateway("breeze api error")
		case breeze.ErrorKindTransport:
			return huma.Error502BadGateway("breeze unreachable")
		default:
			return huma.Error502BadGateway("breeze reply not understood")
		}
	}

	switch {
	case errors.Is(err, breeze.ErrBadParameter):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, breeze.ErrConfig):
		return huma.Error500InternalServerError("service misconfigured")
	default:
		return huma.Error502BadGateway("breeze api error")
	}
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
