package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/perrors"
	"github.com/atb-labs/tracker/internal/services"
	client2 "github.com/atb-labs/tracker/internal/services/client"
)

func RegisterClientRoutes(r *router.Router, svc *services.Services) {
	// Create client
	r.POST("/api/clients", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body client2.CreateClientRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Name == "" {
			writeError(ctx, stdCtx, "Name is required", perrors.NewErrInvalidRequest("Name is required", errors.New("name is required")))
			return
		}

		created, err := svc.Client.Create(stdCtx, &body)
		if err != nil {
			switch {
			case errors.Is(err, client2.ErrClientAlreadyExists):
				writeError(ctx, stdCtx, "Client with this name already exists", perrors.New(perrors.ErrCodeConflict, "Client with this name already exists", err))
			default:
				writeError(ctx, stdCtx, "Failed to create client", perrors.NewErrInternalServerError("Failed to create client", err))
			}
			return
		}

		writeCreated(ctx, stdCtx, "Client created successfully", created)
	})

	// List clients
	r.GET("/api/clients", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		clients, err := svc.Client.List(stdCtx)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list clients", perrors.NewErrInternalServerError("Failed to list clients", err))
			return
		}

		writeOK(ctx, stdCtx, "Clients retrieved successfully", clients)
	})

	// Get client by ID
	r.GET("/api/clients/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		c, err := svc.Client.GetByID(stdCtx, id)
		if err != nil {
			switch {
			case errors.Is(err, client2.ErrClientNotFound):
				writeError(ctx, stdCtx, "Client not found", perrors.New(perrors.ErrCodeNotFound, "Client not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to get client", perrors.NewErrInternalServerError("Failed to get client", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Client retrieved successfully", c)
	})

	// Update client
	r.PUT("/api/clients/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var body client2.UpdateClientRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Name != nil && *body.Name == "" {
			writeError(ctx, stdCtx, "Name cannot be empty", perrors.NewErrInvalidRequest("Name cannot be empty", errors.New("name cannot be empty")))
			return
		}

		updated, err := svc.Client.Update(stdCtx, id, &body)
		if err != nil {
			switch {
			case errors.Is(err, client2.ErrClientNotFound):
				writeError(ctx, stdCtx, "Client not found", perrors.New(perrors.ErrCodeNotFound, "Client not found", err))
			case errors.Is(err, client2.ErrClientAlreadyExists):
				writeError(ctx, stdCtx, "Client with this name already exists", perrors.New(perrors.ErrCodeConflict, "Client with this name already exists", err))
			default:
				writeError(ctx, stdCtx, "Failed to update client", perrors.NewErrInternalServerError("Failed to update client", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Client updated successfully", updated)
	})

	// Delete client
	r.DELETE("/api/clients/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		if err := svc.Client.Delete(stdCtx, id); err != nil {
			switch {
			case errors.Is(err, client2.ErrClientNotFound):
				writeError(ctx, stdCtx, "Client not found", perrors.New(perrors.ErrCodeNotFound, "Client not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to delete client", perrors.NewErrInternalServerError("Failed to delete client", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Client deleted successfully", nil)
	})
}
