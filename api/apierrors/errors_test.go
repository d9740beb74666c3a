package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestInspect_FindsWrappedError(t *testing.T) {
	sentinel := New(KindConflict, "ALREADY_SUBSCRIBED", "user already has an active subscription")
	err := fmt.Errorf("%w: email a@x.com", sentinel)

	got := Inspect(err)
	assert.Same(t, sentinel, got)
	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, http.StatusBadRequest, got.HTTPStatus())
	assert.Equal(t, codes.FailedPrecondition, got.Status())
}

func TestInspect_UnclassifiedIsInternal(t *testing.T) {
	got := Inspect(errors.New("boom"))
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, CodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus())
	assert.Equal(t, codes.Internal, got.Status())
}

func TestKindMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		http int
		grpc codes.Code
	}{
		{KindClientInput, http.StatusBadRequest, codes.InvalidArgument},
		{KindConflict, http.StatusBadRequest, codes.FailedPrecondition},
		{KindNotFound, http.StatusNotFound, codes.NotFound},
		{KindUpstream, http.StatusInternalServerError, codes.Unavailable},
		{KindNotAllowed, http.StatusMethodNotAllowed, codes.Unimplemented},
	}
	for _, c := range cases {
		e := New(c.kind, "X", "x")
		assert.Equal(t, c.http, e.HTTPStatus())
		assert.Equal(t, c.grpc, e.Status())
	}
}

func TestWithGRPCCode(t *testing.T) {
	base := New(KindUpstream, "CORRUPT_METADATA", "invalid plan type in session")
	e := base.WithGRPCCode(codes.DataLoss)
	assert.Equal(t, codes.DataLoss, e.Status())
	assert.Equal(t, codes.Unavailable, base.Status())
	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus())
}
