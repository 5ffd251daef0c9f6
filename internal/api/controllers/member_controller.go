package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/perrors"
	"github.com/atb-labs/tracker/internal/services"
	member2 "github.com/atb-labs/tracker/internal/services/member"
)

func RegisterMemberRoutes(r *router.Router, svc *services.Services) {
	// Create member
	r.POST("/api/members", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body member2.CreateMemberRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Name == "" {
			writeError(ctx, stdCtx, "Name is required", perrors.NewErrInvalidRequest("Name is required", errors.New("name is required")))
			return
		}

		if body.Email == "" {
			writeError(ctx, stdCtx, "Email is required", perrors.NewErrInvalidRequest("Email is required", errors.New("email is required")))
			return
		}

		created, err := svc.Member.Create(stdCtx, &body)
		if err != nil {
			switch {
			case errors.Is(err, member2.ErrEmailTaken):
				writeError(ctx, stdCtx, "Email already registered", perrors.New(perrors.ErrCodeBadRequest, "Email already registered", err))
			default:
				writeError(ctx, stdCtx, "Failed to create member", perrors.NewErrInternalServerError("Failed to create member", err))
			}
			return
		}

		writeCreated(ctx, stdCtx, "Member created successfully", created)
	})

	// List members
	r.GET("/api/members", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		members, err := svc.Member.List(stdCtx)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list members", perrors.NewErrInternalServerError("Failed to list members", err))
			return
		}

		writeOK(ctx, stdCtx, "Members retrieved successfully", members)
	})

	// Get member by ID
	r.GET("/api/members/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		m, err := svc.Member.GetByID(stdCtx, id)
		if err != nil {
			switch {
			case errors.Is(err, member2.ErrMemberNotFound):
				writeError(ctx, stdCtx, "Member not found", perrors.New(perrors.ErrCodeNotFound, "Member not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to get member", perrors.NewErrInternalServerError("Failed to get member", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Member retrieved successfully", m)
	})

	// Update member
	r.PUT("/api/members/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var body member2.UpdateMemberRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		updated, err := svc.Member.Update(stdCtx, id, &body)
		if err != nil {
			switch {
			case errors.Is(err, member2.ErrMemberNotFound):
				writeError(ctx, stdCtx, "Member not found", perrors.New(perrors.ErrCodeNotFound, "Member not found", err))
			case errors.Is(err, member2.ErrEmailTaken):
				writeError(ctx, stdCtx, "Email already registered", perrors.New(perrors.ErrCodeBadRequest, "Email already registered", err))
			default:
				writeError(ctx, stdCtx, "Failed to update member", perrors.NewErrInternalServerError("Failed to update member", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Member updated successfully", updated)
	})

	// Delete member
	r.DELETE("/api/members/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		if err := svc.Member.Delete(stdCtx, id); err != nil {
			switch {
			case errors.Is(err, member2.ErrMemberNotFound):
				writeError(ctx, stdCtx, "Member not found", perrors.New(perrors.ErrCodeNotFound, "Member not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to delete member", perrors.NewErrInternalServerError("Failed to delete member", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Member deleted successfully", nil)
	})
}
