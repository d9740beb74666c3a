// Package lambdaproxy serves an http.Handler behind API Gateway proxy
// integration, so the same router runs on AWS Lambda.
package lambdaproxy

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

const headerRequestID = "X-Request-Id"

// Handler is the Lambda entry point signature for API Gateway proxy events.
type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewHandler adapts h to API Gateway proxy events. The API Gateway request id
// becomes the request id when the caller did not send one.
func NewHandler(h http.Handler) Handler {
	return httpadapter.New(withGatewayRequestID(h)).ProxyWithContext
}

func withGatewayRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerRequestID) == "" {
			if gwCtx, ok := core.GetAPIGatewayContextFromContext(r.Context()); ok && gwCtx.RequestID != "" {
				r.Header.Set(headerRequestID, gwCtx.RequestID)
			}
		}
		next.ServeHTTP(w, r)
	})
}
