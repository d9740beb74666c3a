package app

import (
	"google.golang.org/grpc/codes"

	"github.com/tbeaudouin05/startupstack-checkout/api/apierrors"
)

// Typed errors for the checkout app layer. These enable HTTP and gRPC mapping
// without relying on SDK-specific error types at the transport layer.
var (
	// ErrMissingParameter indicates a required request field is absent or blank.
	ErrMissingParameter = apierrors.New(apierrors.KindClientInput, "MISSING_PARAMETER", "missing required parameters")
	// ErrUnknownPrice indicates the price id is not in the plan catalog.
	ErrUnknownPrice = apierrors.New(apierrors.KindClientInput, "UNKNOWN_PRICE", "invalid price selected")
	// ErrMalformedBody indicates the request body could not be decoded.
	ErrMalformedBody = apierrors.New(apierrors.KindClientInput, "MALFORMED_BODY", "malformed request body")
	// ErrAlreadySubscribed indicates the customer already holds an active plan.
	ErrAlreadySubscribed = apierrors.New(apierrors.KindConflict, "ALREADY_SUBSCRIBED", "user already has an active subscription")
	// ErrSessionIncomplete indicates the checkout session exists but was not completed.
	ErrSessionIncomplete = apierrors.New(apierrors.KindClientInput, "SESSION_INCOMPLETE", "invalid or incomplete session").
		WithGRPCCode(codes.FailedPrecondition)
	ErrSessionNotFound = apierrors.New(apierrors.KindNotFound, "SESSION_NOT_FOUND", "session not found")
	// ErrStoreUnavailable indicates a user store failure.
	ErrStoreUnavailable = apierrors.New(apierrors.KindUpstream, "STORE_UNAVAILABLE", "database error")
	// ErrGateway indicates a failure from the payment provider.
	ErrGateway = apierrors.New(apierrors.KindUpstream, "GATEWAY_ERROR", "gateway error")
	// ErrCorruptMetadata indicates session metadata failed validation.
	ErrCorruptMetadata = apierrors.New(apierrors.KindUpstream, "CORRUPT_METADATA", "invalid plan type in session").
		WithGRPCCode(codes.DataLoss)
	ErrMethodNotAllowed = apierrors.New(apierrors.KindNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
)
