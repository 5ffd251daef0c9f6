package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/perrors"
	"github.com/atb-labs/tracker/internal/services"
	timeentry2 "github.com/atb-labs/tracker/internal/services/timeentry"
)

func RegisterTimeEntryRoutes(r *router.Router, svc *services.Services) {
	// Create time entry
	r.POST("/api/time-entries", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body timeentry2.CreateTimeEntryRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		created, err := svc.TimeEntry.Create(stdCtx, &body)
		if err != nil {
			switch {
			case errors.Is(err, timeentry2.ErrInvalidType):
				writeError(ctx, stdCtx, "Invalid entry type", perrors.NewErrInvalidRequest("Invalid entry type", err))
			default:
				writeError(ctx, stdCtx, "Failed to create time entry", perrors.NewErrInternalServerError("Failed to create time entry", err))
			}
			return
		}

		writeCreated(ctx, stdCtx, "Time entry created successfully", created)
	})

	// List time entries, filterable by type, project and date
	r.GET("/api/time-entries", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		projectID, err := optionalUUIDQuery(ctx, "project_id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid project_id format", perrors.NewErrInvalidRequest("Invalid project_id format", err))
			return
		}

		filter := &timeentry2.ListTimeEntriesFilter{
			ProjectID: projectID,
			Date:      optionalStringQuery(ctx, "date"),
		}

		if raw := optionalStringQuery(ctx, "type"); raw != nil {
			t := timeentry2.EntryType(*raw)
			if !timeentry2.ValidType(t) {
				writeError(ctx, stdCtx, "Invalid entry type", perrors.NewErrInvalidRequest("Invalid entry type", errors.New("type must be regular or pomodoro")))
				return
			}
			filter.Type = &t
		}

		entries, err := svc.TimeEntry.List(stdCtx, filter)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list time entries", perrors.NewErrInternalServerError("Failed to list time entries", err))
			return
		}

		writeOK(ctx, stdCtx, "Time entries retrieved successfully", entries)
	})

	// Get time entry by ID
	r.GET("/api/time-entries/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		entry, err := svc.TimeEntry.GetByID(stdCtx, id)
		if err != nil {
			switch {
			case errors.Is(err, timeentry2.ErrTimeEntryNotFound):
				writeError(ctx, stdCtx, "Time entry not found", perrors.New(perrors.ErrCodeNotFound, "Time entry not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to get time entry", perrors.NewErrInternalServerError("Failed to get time entry", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Time entry retrieved successfully", entry)
	})

	// Update time entry
	r.PUT("/api/time-entries/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var body timeentry2.UpdateTimeEntryRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		updated, err := svc.TimeEntry.Update(stdCtx, id, &body)
		if err != nil {
			switch {
			case errors.Is(err, timeentry2.ErrTimeEntryNotFound):
				writeError(ctx, stdCtx, "Time entry not found", perrors.New(perrors.ErrCodeNotFound, "Time entry not found", err))
			case errors.Is(err, timeentry2.ErrInvalidType):
				writeError(ctx, stdCtx, "Invalid entry type", perrors.NewErrInvalidRequest("Invalid entry type", err))
			default:
				writeError(ctx, stdCtx, "Failed to update time entry", perrors.NewErrInternalServerError("Failed to update time entry", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Time entry updated successfully", updated)
	})

	// Delete time entry
	r.DELETE("/api/time-entries/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		if err := svc.TimeEntry.Delete(stdCtx, id); err != nil {
			switch {
			case errors.Is(err, timeentry2.ErrTimeEntryNotFound):
				writeError(ctx, stdCtx, "Time entry not found", perrors.New(perrors.ErrCodeNotFound, "Time entry not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to delete time entry", perrors.NewErrInternalServerError("Failed to delete time entry", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Time entry deleted successfully", nil)
	})
}
