package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/perrors"
	"github.com/atb-labs/tracker/internal/services"
	tag2 "github.com/atb-labs/tracker/internal/services/tag"
)

func RegisterTagRoutes(r *router.Router, svc *services.Services) {
	// Create tag
	r.POST("/api/tags", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body tag2.CreateTagRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Name == "" {
			writeError(ctx, stdCtx, "Name is required", perrors.NewErrInvalidRequest("Name is required", errors.New("name is required")))
			return
		}

		created, err := svc.Tag.Create(stdCtx, &body)
		if err != nil {
			switch {
			case errors.Is(err, tag2.ErrTagAlreadyExists):
				writeError(ctx, stdCtx, "Tag with this name already exists", perrors.New(perrors.ErrCodeConflict, "Tag with this name already exists", err))
			default:
				writeError(ctx, stdCtx, "Failed to create tag", perrors.NewErrInternalServerError("Failed to create tag", err))
			}
			return
		}

		writeCreated(ctx, stdCtx, "Tag created successfully", created)
	})

	// List tags
	r.GET("/api/tags", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		tags, err := svc.Tag.List(stdCtx)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list tags", perrors.NewErrInternalServerError("Failed to list tags", err))
			return
		}

		writeOK(ctx, stdCtx, "Tags retrieved successfully", tags)
	})

	// Update tag
	r.PUT("/api/tags/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var body tag2.UpdateTagRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Name != nil && *body.Name == "" {
			writeError(ctx, stdCtx, "Name cannot be empty", perrors.NewErrInvalidRequest("Name cannot be empty", errors.New("name cannot be empty")))
			return
		}

		updated, err := svc.Tag.Update(stdCtx, id, &body)
		if err != nil {
			switch {
			case errors.Is(err, tag2.ErrTagNotFound):
				writeError(ctx, stdCtx, "Tag not found", perrors.New(perrors.ErrCodeNotFound, "Tag not found", err))
			case errors.Is(err, tag2.ErrTagAlreadyExists):
				writeError(ctx, stdCtx, "Tag with this name already exists", perrors.New(perrors.ErrCodeConflict, "Tag with this name already exists", err))
			default:
				writeError(ctx, stdCtx, "Failed to update tag", perrors.NewErrInternalServerError("Failed to update tag", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Tag updated successfully", updated)
	})

	// Delete tag
	r.DELETE("/api/tags/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		if err := svc.Tag.Delete(stdCtx, id); err != nil {
			switch {
			case errors.Is(err, tag2.ErrTagNotFound):
				writeError(ctx, stdCtx, "Tag not found", perrors.New(perrors.ErrCodeNotFound, "Tag not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to delete tag", perrors.NewErrInternalServerError("Failed to delete tag", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Tag deleted successfully", nil)
	})
}
