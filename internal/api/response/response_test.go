package response

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/perrors"
)

func TestWriteDefaultsToOKJSON(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}

	NewResponse(context.Background(), "done", map[string]string{"key": "value"}).Write(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	require.Contains(t, string(ctx.Response.Body()), `"value"`)
	require.Contains(t, string(ctx.Response.Body()), `"error":false`)
}

func TestWithErrorUsesEmbeddedStatus(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}

	err := perrors.New(perrors.ErrCodeNotFound, "missing", errors.New("no such row"))
	NewResponse[any](context.Background(), "missing", nil).WithError(err).Write(ctx)

	require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	require.Contains(t, string(ctx.Response.Body()), `"error":true`)
}

func TestWithErrorWrapsUnknownErrorsAsInternal(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}

	NewResponse[any](context.Background(), "boom", nil).WithError(errors.New("plain failure")).Write(ctx)

	require.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	require.NotContains(t, string(ctx.Response.Body()), "plain failure")
}

func TestInternalErrorBodyHidesCause(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}

	cause := errors.New(`pq: password authentication failed for user "tracker"`)
	err := perrors.NewErrInternalServerError("Failed to create member", cause)
	NewResponse[any](context.Background(), "Failed to create member", nil).WithError(err).Write(ctx)

	body := string(ctx.Response.Body())
	require.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	require.NotContains(t, body, "password authentication failed")
	require.Contains(t, body, "Failed to create member")
}

func TestNonInternalErrorKeepsCause(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}

	err := perrors.New(perrors.ErrCodeConflict, "Tag with this name already exists", errors.New("duplicate name"))
	NewResponse[any](context.Background(), "Tag with this name already exists", nil).WithError(err).Write(ctx)

	require.Equal(t, http.StatusConflict, ctx.Response.StatusCode())
	require.Contains(t, string(ctx.Response.Body()), "duplicate name")
}

func TestWithStatusOverridesDefault(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}

	NewResponse(context.Background(), "created", "id").WithStatus(http.StatusCreated).Write(ctx)

	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
}
