package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/atb-labs/tracker/internal/services/member"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 30 * 24 * time.Hour

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// GoogleMode selects signup vs login behavior for third-party resolution
type GoogleMode string

const (
	GoogleModeSignup GoogleMode = "signup"
	GoogleModeLogin  GoogleMode = "login"
)

// RegisterRequest captures payload for email/password registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest captures payload for email/password login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthRequest carries the identity claim forwarded by the frontend
// after it completes the Firebase sign-in.
type GoogleAuthRequest struct {
	FirebaseUID   string     `json:"firebase_uid"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Picture       string     `json:"picture"`
	Mode          GoogleMode `json:"mode"`
	EmailVerified bool       `json:"email_verified"`
}

// Session pairs a resolved member with its bearer token
type Session struct {
	Member *member.Member `json:"user"`
	Token  string         `json:"token"`
}

type memberStore interface {
	Create(ctx context.Context, req *member.CreateMemberRequest) (*member.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*member.Member, error)
	GetByEmail(ctx context.Context, email string) (*member.Member, error)
	GetByEmailAndProvider(ctx context.Context, email string, provider member.Provider) (*member.Member, error)
	GetByFirebaseUID(ctx context.Context, firebaseUID string) (*member.Member, error)
	Update(ctx context.Context, id uuid.UUID, req *member.UpdateMemberRequest) (*member.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tokenStore interface {
	Upsert(ctx context.Context, memberID uuid.UUID, token string, expiresAt time.Time) (*AuthToken, error)
	GetValid(ctx context.Context, token string, now time.Time) (*AuthToken, error)
	Deactivate(ctx context.Context, token string) error
}

// AuthService implements token issuance/verification/revocation and the
// identity resolution flows on top of the member and token stores.
type AuthService struct {
	members memberStore
	tokens  tokenStore
	now     func() time.Time
}

// NewAuthService constructs a new AuthService
func NewAuthService(members memberStore, tokens tokenStore) *AuthService {
	return &AuthService{
		members: members,
		tokens:  tokens,
		now:     time.Now,
	}
}

// newTokenString returns an opaque URL-safe token backed by 32 random bytes
func newTokenString() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Issue rotates the member's token: fresh string, expiry 30 days out,
// active flag reset.
func (s *AuthService) Issue(ctx context.Context, memberID uuid.UUID) (*AuthToken, error) {
	token, err := newTokenString()
	if err != nil {
		return nil, err
	}

	t, err := s.tokens.Upsert(ctx, memberID, token, s.now().Add(tokenTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return t, nil
}

// Verify resolves a bearer token string to its owning member. Unknown,
// revoked and expired tokens are indistinguishable to the caller.
func (s *AuthService) Verify(ctx context.Context, token string) (*member.Member, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	t, err := s.tokens.GetValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	m, err := s.members.GetByID(ctx, t.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}

	return m, nil
}

// Revoke deactivates the matching token without deleting it
func (s *AuthService) Revoke(ctx context.Context, token string) error {
	if err := s.tokens.Deactivate(ctx, token); err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return ErrTokenNotFound
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// Register creates an email-provider member and issues its first token
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*Session, error) {
	if _, err := s.members.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: %s", member.ErrEmailTaken, req.Email)
	} else if !errors.Is(err, member.ErrMemberNotFound) {
		return nil, fmt.Errorf("failed to validate email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	m, err := s.members.Create(ctx, &member.CreateMemberRequest{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Provider:     member.ProviderEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	t, err := s.Issue(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	return &Session{Member: m, Token: t.Token}, nil
}

// Login checks the password for an email-provider member and rotates the token
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*Session, error) {
	m, err := s.members.GetByEmailAndProvider(ctx, req.Email, member.ProviderEmail)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if m.PasswordHash == nil {
		return nil, ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*m.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	t, err := s.Issue(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	return &Session{Member: m, Token: t.Token}, nil
}

// GoogleAuth resolves a third-party identity claim to a member.
//
// Precedence is fixed: firebase_uid first, then email (with uid backfill for
// accounts that registered by password), then creation when mode is signup.
// Changing the order would mint duplicate accounts for the same address.
func (s *AuthService) GoogleAuth(ctx context.Context, req *GoogleAuthRequest) (*Session, error) {
	m, err := s.members.GetByFirebaseUID(ctx, req.FirebaseUID)
	if err != nil && !errors.Is(err, member.ErrMemberNotFound) {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if m == nil {
		m, err = s.resolveByEmail(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	m, err = s.syncProfile(ctx, m, req)
	if err != nil {
		return nil, err
	}

	t, err := s.Issue(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	return &Session{Member: m, Token: t.Token}, nil
}

func (s *AuthService) resolveByEmail(ctx context.Context, req *GoogleAuthRequest) (*member.Member, error) {
	m, err := s.members.GetByEmail(ctx, req.Email)
	if err == nil {
		if m.FirebaseUID == nil || *m.FirebaseUID == "" {
			provider := member.ProviderGoogle
			upd := &member.UpdateMemberRequest{
				FirebaseUID:   &req.FirebaseUID,
				Provider:      &provider,
				EmailVerified: &req.EmailVerified,
			}
			if req.Picture != "" {
				upd.Picture = &req.Picture
			}

			m, err = s.members.Update(ctx, m.ID, upd)
			if err != nil {
				return nil, fmt.Errorf("failed to link identity: %w", err)
			}
		}

		return m, nil
	}

	if !errors.Is(err, member.ErrMemberNotFound) {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if req.Mode == GoogleModeLogin {
		return nil, member.ErrMemberNotFound
	}

	var picture *string
	if req.Picture != "" {
		picture = &req.Picture
	}

	m, err = s.members.Create(ctx, &member.CreateMemberRequest{
		Name:          req.Name,
		Email:         req.Email,
		FirebaseUID:   &req.FirebaseUID,
		Picture:       picture,
		Provider:      member.ProviderGoogle,
		EmailVerified: req.EmailVerified,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return m, nil
}

// syncProfile refreshes name/picture/verified-flag from the identity claim
// when they drifted.
func (s *AuthService) syncProfile(ctx context.Context, m *member.Member, req *GoogleAuthRequest) (*member.Member, error) {
	pictureChanged := req.Picture != "" && (m.Picture == nil || *m.Picture != req.Picture)
	if m.Name == req.Name && !pictureChanged && m.EmailVerified == req.EmailVerified {
		return m, nil
	}

	upd := &member.UpdateMemberRequest{
		Name:          &req.Name,
		EmailVerified: &req.EmailVerified,
	}
	if pictureChanged {
		upd.Picture = &req.Picture
	}

	m, err := s.members.Update(ctx, m.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to sync member profile: %w", err)
	}

	return m, nil
}

// DeleteAccount removes the member; the token and profile rows cascade
func (s *AuthService) DeleteAccount(ctx context.Context, memberID uuid.UUID) error {
	if err := s.members.Delete(ctx, memberID); err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return member.ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
