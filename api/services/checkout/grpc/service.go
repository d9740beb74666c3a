// Package grpcserver exposes the checkout operations over gRPC. Messages are
// google.protobuf.Struct values carrying the same JSON field names as the HTTP
// API, so clients need no generated stubs.
package grpcserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "checkout.v1.CheckoutService"

const (
	MethodCreateCheckoutSession = "/" + ServiceName + "/CreateCheckoutSession"
	MethodVerifySession         = "/" + ServiceName + "/VerifySession"
	MethodSendWelcomeEmail      = "/" + ServiceName + "/SendWelcomeEmail"
)

// CheckoutServiceServer is the server API for CheckoutService.
type CheckoutServiceServer interface {
	CreateCheckoutSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	VerifySession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SendWelcomeEmail(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// Register adds srv to the gRPC server.
func Register(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// methodHandler matches the signature of grpc.MethodDesc.Handler.
type methodHandler = func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error)

func unaryHandler(fullMethod string, call func(CheckoutServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) methodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CheckoutServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CheckoutServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for CheckoutService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCheckoutSession",
			Handler:    unaryHandler(MethodCreateCheckoutSession, CheckoutServiceServer.CreateCheckoutSession),
		},
		{
			MethodName: "VerifySession",
			Handler:    unaryHandler(MethodVerifySession, CheckoutServiceServer.VerifySession),
		},
		{
			MethodName: "SendWelcomeEmail",
			Handler:    unaryHandler(MethodSendWelcomeEmail, CheckoutServiceServer.SendWelcomeEmail),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "checkout/v1/checkout.proto",
}

// Client calls CheckoutService over an existing connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCreateCheckoutSession, in, opts...)
}

func (c *Client) VerifySession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodVerifySession, in, opts...)
}

func (c *Client) SendWelcomeEmail(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSendWelcomeEmail, in, opts...)
}
