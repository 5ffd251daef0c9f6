package controllers

import (
	"net/http"
	"testing"

	"github.com/fasthttp/router"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/services"
)

// The empty-token guard runs before any service call, so an empty
// Services value is enough to exercise it.
func newAuthTestHandler() fasthttp.RequestHandler {
	r := router.New()
	RegisterAuthRoutes(r, &services.Services{})
	return r.Handler
}

func postWithoutToken(t *testing.T, path string) *fasthttp.RequestCtx {
	t.Helper()

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI(path)

	newAuthTestHandler()(ctx)

	return ctx
}

func TestVerifyWithoutTokenReturnsBadRequest(t *testing.T) {
	ctx := postWithoutToken(t, "/api/auth/verify")

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	require.Contains(t, string(ctx.Response.Body()), "Token is required")
}

func TestLogoutWithoutTokenReturnsBadRequest(t *testing.T) {
	ctx := postWithoutToken(t, "/api/auth/logout")

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	require.Contains(t, string(ctx.Response.Body()), "Token is required")
}
