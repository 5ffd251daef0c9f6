package auth

import (
	"context"
	"testing"
	"time"

	"github.com/atb-labs/tracker/internal/services/member"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemberStore struct {
	members map[uuid.UUID]*member.Member
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: map[uuid.UUID]*member.Member{}}
}

func (f *fakeMemberStore) Create(_ context.Context, req *member.CreateMemberRequest) (*member.Member, error) {
	m := &member.Member{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  req.PasswordHash,
		FirebaseUID:   req.FirebaseUID,
		Picture:       req.Picture,
		Provider:      req.Provider,
		EmailVerified: req.EmailVerified,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	f.members[m.ID] = m
	return m, nil
}

func (f *fakeMemberStore) GetByID(_ context.Context, id uuid.UUID) (*member.Member, error) {
	if m, ok := f.members[id]; ok {
		return m, nil
	}
	return nil, member.ErrMemberNotFound
}

func (f *fakeMemberStore) GetByEmail(_ context.Context, email string) (*member.Member, error) {
	for _, m := range f.members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (f *fakeMemberStore) GetByEmailAndProvider(_ context.Context, email string, provider member.Provider) (*member.Member, error) {
	for _, m := range f.members {
		if m.Email == email && m.Provider == provider {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (f *fakeMemberStore) GetByFirebaseUID(_ context.Context, firebaseUID string) (*member.Member, error) {
	for _, m := range f.members {
		if m.FirebaseUID != nil && *m.FirebaseUID == firebaseUID {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (f *fakeMemberStore) Update(_ context.Context, id uuid.UUID, req *member.UpdateMemberRequest) (*member.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.FirebaseUID != nil {
		m.FirebaseUID = req.FirebaseUID
	}
	if req.Picture != nil {
		m.Picture = req.Picture
	}
	if req.Provider != nil {
		m.Provider = *req.Provider
	}
	if req.EmailVerified != nil {
		m.EmailVerified = *req.EmailVerified
	}
	m.UpdatedAt = time.Now()

	return m, nil
}

func (f *fakeMemberStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.members[id]; !ok {
		return member.ErrMemberNotFound
	}
	delete(f.members, id)
	return nil
}

type fakeTokenStore struct {
	byMember map[uuid.UUID]*AuthToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{byMember: map[uuid.UUID]*AuthToken{}}
}

func (f *fakeTokenStore) Upsert(_ context.Context, memberID uuid.UUID, token string, expiresAt time.Time) (*AuthToken, error) {
	t, ok := f.byMember[memberID]
	if !ok {
		t = &AuthToken{ID: uuid.New(), MemberID: memberID, CreatedAt: time.Now()}
		f.byMember[memberID] = t
	}
	t.Token = token
	t.ExpiresAt = expiresAt
	t.IsActive = true
	return t, nil
}

func (f *fakeTokenStore) GetValid(_ context.Context, token string, now time.Time) (*AuthToken, error) {
	for _, t := range f.byMember {
		if t.Token == token && t.IsActive && t.ExpiresAt.After(now) {
			return t, nil
		}
	}
	return nil, ErrTokenNotFound
}

func (f *fakeTokenStore) Deactivate(_ context.Context, token string) error {
	for _, t := range f.byMember {
		if t.Token == token {
			t.IsActive = false
			return nil
		}
	}
	return ErrTokenNotFound
}

func newTestService() (*AuthService, *fakeMemberStore, *fakeTokenStore) {
	members := newFakeMemberStore()
	tokens := newFakeTokenStore()
	return NewAuthService(members, tokens), members, tokens
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, member.ProviderEmail, sess.Member.Provider)
	assert.Nil(t, sess.Member.FirebaseUID)
	require.NotNil(t, sess.Member.PasswordHash)
	assert.NotEqual(t, "pw123", *sess.Member.PasswordHash)

	m, err := svc.Verify(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Member.ID, m.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{Name: "Ana Again", Email: "ana@x.com", Password: "other"})
	assert.ErrorIs(t, err, member.ErrEmailTaken)
}

func TestLoginRotatesToken(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess1, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)

	sess2, err := svc.Login(ctx, &LoginRequest{Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.NotEqual(t, sess1.Token, sess2.Token)

	_, err = svc.Verify(ctx, sess1.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	m, err := svc.Verify(ctx, sess2.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", m.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "ghost@x.com", Password: "pw"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "ana@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestVerifyFailsAfterExpiry(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Verify(ctx, sess.Token)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(tokenTTL + time.Hour) }

	_, err = svc.Verify(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokeInvalidatesTokenBeforeExpiry(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, sess.Token))

	_, err = svc.Verify(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokeUnknownToken(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Revoke(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestGoogleAuthLoginModeUnknownIdentity(t *testing.T) {
	svc, members, _ := newTestService()

	_, err := svc.GoogleAuth(context.Background(), &GoogleAuthRequest{
		FirebaseUID: "uid-1",
		Email:       "new@x.com",
		Name:        "New User",
		Mode:        GoogleModeLogin,
	})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	assert.Empty(t, members.members)
}

func TestGoogleAuthSignupCreatesSingleMember(t *testing.T) {
	svc, members, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.GoogleAuth(ctx, &GoogleAuthRequest{
		FirebaseUID:   "uid-1",
		Email:         "new@x.com",
		Name:          "New User",
		Picture:       "https://img/x.png",
		Mode:          GoogleModeSignup,
		EmailVerified: true,
	})
	require.NoError(t, err)
	assert.Len(t, members.members, 1)
	assert.Equal(t, member.ProviderGoogle, sess.Member.Provider)
	require.NotNil(t, sess.Member.FirebaseUID)
	assert.Equal(t, "uid-1", *sess.Member.FirebaseUID)
	assert.True(t, sess.Member.EmailVerified)

	// A repeat signup for the same identity resolves to the same member
	again, err := svc.GoogleAuth(ctx, &GoogleAuthRequest{
		FirebaseUID:   "uid-1",
		Email:         "new@x.com",
		Name:          "New User",
		Picture:       "https://img/x.png",
		Mode:          GoogleModeSignup,
		EmailVerified: true,
	})
	require.NoError(t, err)
	assert.Len(t, members.members, 1)
	assert.Equal(t, sess.Member.ID, again.Member.ID)
}

func TestGoogleAuthBackfillsIdentityForPasswordAccount(t *testing.T) {
	svc, members, _ := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)

	sess, err := svc.GoogleAuth(ctx, &GoogleAuthRequest{
		FirebaseUID:   "uid-ana",
		Email:         "ana@x.com",
		Name:          "Ana",
		Mode:          GoogleModeLogin,
		EmailVerified: true,
	})
	require.NoError(t, err)
	assert.Len(t, members.members, 1)
	assert.Equal(t, reg.Member.ID, sess.Member.ID)
	require.NotNil(t, sess.Member.FirebaseUID)
	assert.Equal(t, "uid-ana", *sess.Member.FirebaseUID)
	assert.Equal(t, member.ProviderGoogle, sess.Member.Provider)
}

func TestGoogleAuthSyncsChangedProfile(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GoogleAuth(ctx, &GoogleAuthRequest{
		FirebaseUID: "uid-1",
		Email:       "ana@x.com",
		Name:        "Ana",
		Picture:     "https://img/old.png",
		Mode:        GoogleModeSignup,
	})
	require.NoError(t, err)

	sess, err := svc.GoogleAuth(ctx, &GoogleAuthRequest{
		FirebaseUID:   "uid-1",
		Email:         "ana@x.com",
		Name:          "Ana Renamed",
		Picture:       "https://img/new.png",
		Mode:          GoogleModeLogin,
		EmailVerified: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Renamed", sess.Member.Name)
	require.NotNil(t, sess.Member.Picture)
	assert.Equal(t, "https://img/new.png", *sess.Member.Picture)
	assert.True(t, sess.Member.EmailVerified)
}

func TestDeleteAccount(t *testing.T) {
	svc, members, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, &RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, sess.Member.ID))
	assert.Empty(t, members.members)

	err = svc.DeleteAccount(ctx, sess.Member.ID)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}
