package grpcserver

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tbeaudouin05/startupstack-checkout/api/apierrors"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/app"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/notify"
)

// ErrorDomain is reported in google.rpc.ErrorInfo details.
const ErrorDomain = "checkout.startupstack"

// Server adapts the checkout and notify services to CheckoutServiceServer.
type Server struct {
	checkout app.Service
	welcome  notify.Notifier
	debug    bool
}

func New(checkout app.Service, welcome notify.Notifier, debug bool) *Server {
	return &Server{checkout: checkout, welcome: welcome, debug: debug}
}

var _ CheckoutServiceServer = (*Server)(nil)

func (s *Server) CreateCheckoutSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	sess, err := s.checkout.CreateCheckout(ctx, app.CheckoutRequest{
		CustomerEmail: stringField(in, "customerEmail"),
		PriceID:       stringField(in, "priceId"),
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return structpb.NewStruct(map[string]any{
		"success": true,
		"id":      sess.ID,
		"url":     sess.URL,
	})
}

func (s *Server) VerifySession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	conf, err := s.checkout.VerifySession(ctx, stringField(in, "sessionId"))
	if err != nil {
		return nil, s.toStatus(err)
	}
	return structpb.NewStruct(map[string]any{
		"success":       true,
		"planType":      conf.PlanType.String(),
		"customerEmail": conf.CustomerEmail,
		"sessionId":     conf.SessionID,
	})
}

func (s *Server) SendWelcomeEmail(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if err := s.welcome.Notify(ctx, stringField(in, "email"), stringField(in, "userName")); err != nil {
		return nil, s.toStatus(err)
	}
	return structpb.NewStruct(map[string]any{
		"success": true,
		"message": "Welcome email sent successfully",
	})
}

// stringField returns the string value of key; absent or non-string values read as "".
func stringField(in *structpb.Struct, key string) string {
	return in.GetFields()[key].GetStringValue()
}

func (s *Server) toStatus(err error) error {
	e := apierrors.Inspect(err)
	msg := e.Error()
	if s.debug {
		msg = err.Error()
	}
	st := status.New(e.Status(), msg)
	withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: e.Code, Domain: ErrorDomain})
	if derr != nil {
		return st.Err()
	}
	return withInfo.Err()
}
