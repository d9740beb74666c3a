package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	gw "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/gateway"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"
)

// VerifySession confirms a completed checkout. Completion is the only gate and
// the plan type is taken from metadata only after it parses as a known tier.
func (s serviceImpl) VerifySession(ctx context.Context, sessionID string) (SessionConfirmation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionConfirmation{}, fmt.Errorf("%w: sessionId", ErrMissingParameter)
	}

	sess, err := s.gw.RetrieveSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gw.ErrSessionNotFound) {
			return SessionConfirmation{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return SessionConfirmation{}, fmt.Errorf("%w: error retrieving checkout session: %v", ErrGateway, err)
	}
	if sess.Status != gw.SessionStatusComplete {
		return SessionConfirmation{}, fmt.Errorf("%w: status %q", ErrSessionIncomplete, sess.Status)
	}

	tier, err := s.tierFromMetadata(sess)
	if err != nil {
		slog.WarnContext(ctx, "rejected session metadata", "session_id", sess.ID, "err", err)
		return SessionConfirmation{}, err
	}

	email := sess.CustomerEmail
	if email == "" {
		email = sess.Metadata[gw.MetadataEmail]
	}
	id := sess.ID
	if id == "" {
		id = sessionID
	}
	return SessionConfirmation{PlanType: tier, CustomerEmail: email, SessionID: id}, nil
}

// tierFromMetadata parses planType and cross-checks it against the priceId
// recorded at creation. A priceId unknown to the catalog is not checked, so
// sessions keep verifying after a price rotation.
func (s serviceImpl) tierFromMetadata(sess gw.Session) (plan.Tier, error) {
	tier, err := plan.ParseTier(sess.Metadata[gw.MetadataPlanType])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptMetadata, err)
	}

	priceID := sess.Metadata[gw.MetadataPriceID]
	if priceID == "" {
		return tier, nil
	}
	if want, ok := s.catalog.Resolve(priceID); ok && want != tier {
		return "", fmt.Errorf("%w: plan type %s does not match price %s", ErrCorruptMetadata, tier, priceID)
	}
	if len(sess.LineItemPriceIDs) > 0 && !slices.Contains(sess.LineItemPriceIDs, priceID) {
		return "", fmt.Errorf("%w: price %s not among line items", ErrCorruptMetadata, priceID)
	}
	return tier, nil
}
