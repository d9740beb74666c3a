package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"

	"github.com/tbeaudouin05/startupstack-checkout/api/apierrors"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/app"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/notify"
)

const (
	PathCreateCheckoutSession = "/api/create-checkout-session"
	PathVerifySession         = "/api/verify-session"
	PathSendWelcomeEmail      = "/api/send-welcome-email"
)

var errNotFound = apierrors.New(apierrors.KindNotFound, "NOT_FOUND", "not found")

// Deps are the services the HTTP API fronts.
type Deps struct {
	Checkout app.Service
	Welcome  notify.Notifier
	// Debug exposes error details in responses.
	Debug bool
}

// NewRouter returns the central HTTP router for the API. Every endpoint accepts
// POST, answers OPTIONS with 200 and rejects any other method with 405.
func NewRouter(d Deps) http.Handler {
	h := handlers{checkout: d.Checkout, welcome: d.Welcome, debug: d.Debug}

	mux := runtime.NewServeMux(runtime.WithRoutingErrorHandler(h.routingError))
	endpoints := map[string]runtime.HandlerFunc{
		PathCreateCheckoutSession: h.createCheckoutSession,
		PathVerifySession:         h.verifySession,
		PathSendWelcomeEmail:      h.sendWelcomeEmail,
	}
	for path, fn := range endpoints {
		if err := mux.HandlePath(http.MethodPost, path, fn); err != nil {
			slog.Error("failed to register route", "path", path, "err", err)
		}
		if err := mux.HandlePath(http.MethodOptions, path, preflight); err != nil {
			slog.Error("failed to register route", "path", path, "err", err)
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type"},
		OptionsSuccessStatus: http.StatusOK,
		// Preflight falls through to the mux so the fixed header set is always sent.
		OptionsPassthrough: true,
	})
	return requestID(recoverer(h.debug, logRequests(c.Handler(withCORSHeaders(mux)))))
}

func preflight(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	w.WriteHeader(http.StatusOK)
}

func (h handlers) routingError(_ context.Context, _ *runtime.ServeMux, _ runtime.Marshaler, w http.ResponseWriter, r *http.Request, httpStatus int) {
	err := error(errNotFound)
	if httpStatus == http.StatusMethodNotAllowed {
		err = app.ErrMethodNotAllowed
	}
	writeError(w, r, err, h.debug)
}
