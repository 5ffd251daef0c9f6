package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/atb-labs/tracker/internal/perrors"
	"github.com/atb-labs/tracker/internal/services"
	auth2 "github.com/atb-labs/tracker/internal/services/auth"
	member2 "github.com/atb-labs/tracker/internal/services/member"
)

type tokenRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	User  *member2.Member `json:"user"`
	Valid bool            `json:"valid"`
}

func RegisterAuthRoutes(r *router.Router, svc *services.Services) {
	// Register with email and password
	r.POST("/api/auth/register", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body auth2.RegisterRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Email == "" {
			writeError(ctx, stdCtx, "Email is required", perrors.NewErrInvalidRequest("Email is required", errors.New("email is required")))
			return
		}

		if body.Password == "" {
			writeError(ctx, stdCtx, "Password is required", perrors.NewErrInvalidRequest("Password is required", errors.New("password is required")))
			return
		}

		session, err := svc.Auth.Register(stdCtx, &body)
		if err != nil {
			switch {
			case errors.Is(err, member2.ErrEmailTaken):
				writeError(ctx, stdCtx, "Email already registered", perrors.New(perrors.ErrCodeBadRequest, "Email already registered", err))
			default:
				writeError(ctx, stdCtx, "Failed to register", perrors.NewErrInternalServerError("Failed to register", err))
			}
			return
		}

		writeCreated(ctx, stdCtx, "Registered successfully", session)
	})

	// Login with email and password
	r.POST("/api/auth/login", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body auth2.LoginRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		session, err := svc.Auth.Login(stdCtx, &body)
		if err != nil {
			switch {
			case errors.Is(err, member2.ErrMemberNotFound):
				writeError(ctx, stdCtx, "Member not found", perrors.New(perrors.ErrCodeNotFound, "Member not found", err))
			case errors.Is(err, auth2.ErrInvalidPassword):
				writeError(ctx, stdCtx, "Invalid credentials", perrors.New(perrors.ErrCodeUnauthorized, "Invalid credentials", err))
			default:
				writeError(ctx, stdCtx, "Failed to login", perrors.NewErrInternalServerError("Failed to login", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Logged in successfully", session)
	})

	// Sign in or sign up with a Google identity
	r.POST("/api/auth/google", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body auth2.GoogleAuthRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.FirebaseUID == "" {
			writeError(ctx, stdCtx, "Firebase UID is required", perrors.NewErrInvalidRequest("Firebase UID is required", errors.New("firebase_uid is required")))
			return
		}

		if body.Email == "" {
			writeError(ctx, stdCtx, "Email is required", perrors.NewErrInvalidRequest("Email is required", errors.New("email is required")))
			return
		}

		session, err := svc.Auth.GoogleAuth(stdCtx, &body)
		if err != nil {
			switch {
			case errors.Is(err, member2.ErrMemberNotFound):
				writeError(ctx, stdCtx, "Member not found", perrors.New(perrors.ErrCodeNotFound, "Member not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to authenticate", perrors.NewErrInternalServerError("Failed to authenticate", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Authenticated successfully", session)
	})

	// Verify a token and return its owner
	r.POST("/api/auth/verify", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body tokenRequest
		_ = parseBody(ctx, &body)
		if body.Token == "" {
			body.Token = bearerToken(ctx)
		}

		if body.Token == "" {
			writeError(ctx, stdCtx, "Token is required", perrors.NewErrInvalidRequest("Token is required", errors.New("token is required")))
			return
		}

		m, err := svc.Auth.Verify(stdCtx, body.Token)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		writeOK(ctx, stdCtx, "Token is valid", verifyResponse{User: m, Valid: true})
	})

	// Logout revokes the presented token
	r.POST("/api/auth/logout", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body tokenRequest
		_ = parseBody(ctx, &body)
		if body.Token == "" {
			body.Token = bearerToken(ctx)
		}
		token := body.Token

		if token == "" {
			writeError(ctx, stdCtx, "Token is required", perrors.NewErrInvalidRequest("Token is required", errors.New("token is required")))
			return
		}

		if err := svc.Auth.Revoke(stdCtx, token); err != nil {
			switch {
			case errors.Is(err, auth2.ErrTokenNotFound):
				writeError(ctx, stdCtx, "Token not found", perrors.New(perrors.ErrCodeNotFound, "Token not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to logout", perrors.NewErrInternalServerError("Failed to logout", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Logged out successfully", nil)
	})

	// Delete the authenticated member's account and all owned data
	r.DELETE("/api/account", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		m, err := principal(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Invalid token", perrors.NewErrUnauthorized("Invalid token", err))
			return
		}

		if err := svc.Auth.DeleteAccount(stdCtx, m.ID); err != nil {
			writeError(ctx, stdCtx, "Failed to delete account", perrors.NewErrInternalServerError("Failed to delete account", err))
			return
		}

		writeOK(ctx, stdCtx, "Account deleted successfully", nil)
	})
}
