package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/perrors"
	"github.com/atb-labs/tracker/internal/services"
	pomodoro2 "github.com/atb-labs/tracker/internal/services/pomodoro"
)

func RegisterPomodoroRoutes(r *router.Router, svc *services.Services) {
	// Record a finished session for the authenticated member
	r.POST("/api/pomodoros", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		m, err := principal(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		var body pomodoro2.CreatePomodoroRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		created, err := svc.Pomodoro.Create(stdCtx, m.ID, &body)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to record pomodoro session", perrors.NewErrInvalidRequest("Failed to record pomodoro session", err))
			return
		}

		writeCreated(ctx, stdCtx, "Pomodoro session recorded successfully", created)
	})

	// List the authenticated member's sessions
	r.GET("/api/pomodoros", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		m, err := principal(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		sessions, err := svc.Pomodoro.List(stdCtx, m.ID)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list pomodoro sessions", perrors.NewErrInternalServerError("Failed to list pomodoro sessions", err))
			return
		}

		writeOK(ctx, stdCtx, "Pomodoro sessions retrieved successfully", sessions)
	})

	// Get one of the member's sessions
	r.GET("/api/pomodoros/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		m, err := principal(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		session, err := svc.Pomodoro.GetByID(stdCtx, m.ID, id)
		if err != nil {
			switch {
			case errors.Is(err, pomodoro2.ErrSessionNotFound):
				writeError(ctx, stdCtx, "Pomodoro session not found", perrors.New(perrors.ErrCodeNotFound, "Pomodoro session not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to get pomodoro session", perrors.NewErrInternalServerError("Failed to get pomodoro session", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Pomodoro session retrieved successfully", session)
	})

	// Update one of the member's sessions
	r.PUT("/api/pomodoros/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		m, err := principal(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var body pomodoro2.UpdatePomodoroRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		updated, err := svc.Pomodoro.Update(stdCtx, m.ID, id, &body)
		if err != nil {
			switch {
			case errors.Is(err, pomodoro2.ErrSessionNotFound):
				writeError(ctx, stdCtx, "Pomodoro session not found", perrors.New(perrors.ErrCodeNotFound, "Pomodoro session not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to update pomodoro session", perrors.NewErrInternalServerError("Failed to update pomodoro session", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Pomodoro session updated successfully", updated)
	})

	// Delete one of the member's sessions
	r.DELETE("/api/pomodoros/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		m, err := principal(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		if err := svc.Pomodoro.Delete(stdCtx, m.ID, id); err != nil {
			switch {
			case errors.Is(err, pomodoro2.ErrSessionNotFound):
				writeError(ctx, stdCtx, "Pomodoro session not found", perrors.New(perrors.ErrCodeNotFound, "Pomodoro session not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to delete pomodoro session", perrors.NewErrInternalServerError("Failed to delete pomodoro session", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Pomodoro session deleted successfully", nil)
	})
}
