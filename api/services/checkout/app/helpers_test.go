package app

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/mocks"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"
)

const (
	testSuccessURL = "https://startupstack.test/success.html?session_id={CHECKOUT_SESSION_ID}"
	testCancelURL  = "https://startupstack.test/?checkout=cancelled"
)

func testCatalog(t *testing.T) plan.Catalog {
	t.Helper()
	c, err := plan.NewCatalog(
		plan.Entry{PriceID: "price_starter", Tier: plan.Starter},
		plan.Entry{PriceID: "price_pro", Tier: plan.Pro},
		plan.Entry{PriceID: "price_lifetime", Tier: plan.Lifetime},
	)
	require.NoError(t, err)
	return c
}

type testDeps struct {
	users   *mocks.MockUserStore
	gateway *mocks.MockPaymentGateway
	svc     Service
}

func newTestService(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	gateway := mocks.NewMockPaymentGateway(ctrl)
	svc := NewService(Options{
		Catalog:    testCatalog(t),
		Users:      users,
		Gateway:    gateway,
		SuccessURL: testSuccessURL,
		CancelURL:  testCancelURL,
	})
	return testDeps{users: users, gateway: gateway, svc: svc}
}
