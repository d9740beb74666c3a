package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/app"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/notify"
)

const (
	welcomeSentMessage = "Welcome email sent successfully"
	maxBodyBytes       = 1 << 20
)

type handlers struct {
	checkout app.Service
	welcome  notify.Notifier
	debug    bool
}

type createCheckoutResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	URL     string `json:"url,omitempty"`
}

type verifySessionRequest struct {
	SessionID string `json:"sessionId"`
}

type verifySessionResponse struct {
	Success       bool   `json:"success"`
	PlanType      string `json:"planType"`
	CustomerEmail string `json:"customerEmail"`
	SessionID     string `json:"sessionId"`
}

type welcomeEmailRequest struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// decodeBody reads a single JSON object into dst. An empty body decodes as {}
// so that missing fields surface as missing parameters. Trailing values and
// bodies over maxBodyBytes are malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", app.ErrMalformedBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON object", app.ErrMalformedBody)
	}
	return nil
}

func (h handlers) createCheckoutSession(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req app.CheckoutRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, h.debug)
		return
	}
	sess, err := h.checkout.CreateCheckout(r.Context(), req)
	if err != nil {
		writeError(w, r, err, h.debug)
		return
	}
	writeJSON(w, http.StatusOK, createCheckoutResponse{Success: true, ID: sess.ID, URL: sess.URL})
}

func (h handlers) verifySession(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req verifySessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, h.debug)
		return
	}
	conf, err := h.checkout.VerifySession(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, r, err, h.debug)
		return
	}
	writeJSON(w, http.StatusOK, verifySessionResponse{
		Success:       true,
		PlanType:      conf.PlanType.String(),
		CustomerEmail: conf.CustomerEmail,
		SessionID:     conf.SessionID,
	})
}

func (h handlers) sendWelcomeEmail(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req welcomeEmailRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, h.debug)
		return
	}
	if err := h.welcome.Notify(r.Context(), req.Email, req.UserName); err != nil {
		writeError(w, r, err, h.debug)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: welcomeSentMessage})
}
