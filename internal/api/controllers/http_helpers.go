package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	json "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/api/response"
	"github.com/atb-labs/tracker/internal/services/member"
)

// PrincipalKey is the user-value key under which the auth middleware stores
// the authenticated member.
const PrincipalKey = "principal"

// requestContext returns a baseline context for handlers. fasthttp does not provide
// a standard context, so we fall back to Background when no trace context was extracted.
func requestContext(ctx *fasthttp.RequestCtx) context.Context {
	if traceCtx, ok := ctx.UserValue("traceCtx").(context.Context); ok {
		return traceCtx
	}

	return context.Background()
}

// principal returns the member authenticated by the middleware.
func principal(ctx *fasthttp.RequestCtx) (*member.Member, error) {
	m, ok := ctx.UserValue(PrincipalKey).(*member.Member)
	if !ok || m == nil {
		return nil, errors.New("no authenticated member in context")
	}

	return m, nil
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(ctx *fasthttp.RequestCtx) string {
	return strings.TrimPrefix(string(ctx.Request.Header.Peek("Authorization")), "Bearer ")
}

func parseBody(ctx *fasthttp.RequestCtx, target any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return errors.New("request body is empty")
	}

	return json.Unmarshal(body, target)
}

func writeError(ctx *fasthttp.RequestCtx, stdCtx context.Context, message string, err error) {
	response.NewResponse[any](stdCtx, message, nil).WithError(err).Write(ctx)
}

func writeOK(ctx *fasthttp.RequestCtx, stdCtx context.Context, message string, data any) {
	response.NewResponse(stdCtx, message, data).Write(ctx)
}

func writeCreated(ctx *fasthttp.RequestCtx, stdCtx context.Context, message string, data any) {
	response.NewResponse(stdCtx, message, data).WithStatus(fasthttp.StatusCreated).Write(ctx)
}

func pathParam(ctx *fasthttp.RequestCtx, key string) (string, error) {
	val := ctx.UserValue(key)
	if val == nil {
		return "", fmt.Errorf("%s is required", key)
	}

	return fmt.Sprint(val), nil
}

func pathParamUUID(ctx *fasthttp.RequestCtx, key string) (uuid.UUID, error) {
	val, err := pathParam(ctx, key)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(val)
}

func optionalUUIDQuery(ctx *fasthttp.RequestCtx, key string) (*uuid.UUID, error) {
	raw := ctx.QueryArgs().Peek(key)
	if len(raw) == 0 {
		return nil, nil
	}

	id, err := uuid.ParseBytes(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func optionalStringQuery(ctx *fasthttp.RequestCtx, key string) *string {
	raw := ctx.QueryArgs().Peek(key)
	if len(raw) == 0 {
		return nil
	}

	s := string(raw)

	return &s
}
