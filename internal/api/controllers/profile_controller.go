package controllers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/perrors"
	"github.com/atb-labs/tracker/internal/services"
	profile2 "github.com/atb-labs/tracker/internal/services/profile"
)

func RegisterProfileRoutes(r *router.Router, svc *services.Services) {
	// Get the authenticated member's profile, creating it on first access
	r.GET("/api/settings/profile", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		m, err := principal(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		p, err := svc.Profile.GetOrCreate(stdCtx, m.ID, m.Name)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to get profile", perrors.NewErrInternalServerError("Failed to get profile", err))
			return
		}

		writeOK(ctx, stdCtx, "Profile retrieved successfully", p)
	})

	// Update the authenticated member's profile
	r.PUT("/api/settings/profile", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		m, err := principal(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		var body profile2.UpdateProfileRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		p, err := svc.Profile.Update(stdCtx, m.ID, m.Name, &body)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to update profile", perrors.NewErrInternalServerError("Failed to update profile", err))
			return
		}

		writeOK(ctx, stdCtx, "Profile updated successfully", p)
	})
}
