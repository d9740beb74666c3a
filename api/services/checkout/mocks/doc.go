package mocks

//go:generate mockgen -destination=gateway.go -package=mocks github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/gateway PaymentGateway
//go:generate mockgen -destination=users.go -package=mocks github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/db UserStore
