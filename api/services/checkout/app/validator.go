package app

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/db"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"
)

// RequestValidator decides whether a checkout request may proceed to the
// payment provider. It performs at most one store lookup and no writes.
type RequestValidator struct {
	catalog  plan.Catalog
	users    db.UserStore
	validate *validator.Validate
}

func NewRequestValidator(catalog plan.Catalog, users db.UserStore) *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{catalog: catalog, users: users, validate: v}
}

// Validate returns the tier the request resolves to, or the first rejection
// reason. Rejections on input never reach the store.
func (v *RequestValidator) Validate(ctx context.Context, req CheckoutRequest) (plan.Tier, error) {
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)

	// Blank price ids count as missing; anything else must match the catalog exactly.
	check := req
	if strings.TrimSpace(check.PriceID) == "" {
		check.PriceID = ""
	}
	if err := v.validate.Struct(check); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return "", fmt.Errorf("%w: %s", ErrMissingParameter, strings.Join(fields, ", "))
		}
		return "", fmt.Errorf("%w: %v", ErrMissingParameter, err)
	}

	tier, ok := v.catalog.Resolve(req.PriceID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPrice, req.PriceID)
	}

	user, found, err := v.users.FindUserByEmail(ctx, req.CustomerEmail)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if found && HasActiveSubscription(user) {
		return "", fmt.Errorf("%w: status %s", ErrAlreadySubscribed, user.SubscriptionStatus)
	}
	return tier, nil
}
