package v1_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/duynhne/trip-planner/internal/core/domain"
	logicv1 "github.com/duynhne/trip-planner/internal/logic/v1"
)

// mockUserRepo is a hand-written test double for domain.UserRepository.
// Each method is a function field — set only the ones your test needs.
type mockUserRepo struct {
	getByEmail    func(ctx context.Context, email string) (*domain.UserRow, error)
	existsByEmail func(ctx context.Context, email string) (bool, error)
	create        func(ctx context.Context, name, email, passwordHash string) (int, error)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserRow, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmail(ctx, email)
}
func (m *mockUserRepo) Create(ctx context.Context, name, email, passwordHash string) (int, error) {
	return m.create(ctx, name, email, passwordHash)
}

var _ domain.UserRepository = (*mockUserRepo)(nil)

type mockSessionRepo struct {
	create         func(ctx context.Context, userID int, token string, expiresAt time.Time) error
	getUserByToken func(ctx context.Context, token string) (*domain.SessionRow, error)
	delete         func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, userID int, token string, expiresAt time.Time) error {
	return m.create(ctx, userID, token, expiresAt)
}
func (m *mockSessionRepo) GetUserByToken(ctx context.Context, token string) (*domain.SessionRow, error) {
	return m.getUserByToken(ctx, token)
}
func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	return m.delete(ctx, token)
}

var _ domain.SessionRepository = (*mockSessionRepo)(nil)

// memStore is an in-memory credential/session store for round-trip tests.
type memStore struct {
	users    map[string]*domain.UserRow // keyed by email
	sessions map[string]*domain.SessionRow
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*domain.UserRow{},
		sessions: map[string]*domain.SessionRow{},
		nextID:   1,
	}
}

func (s *memStore) userRepo() *mockUserRepo {
	return &mockUserRepo{
		getByEmail: func(_ context.Context, email string) (*domain.UserRow, error) {
			return s.users[email], nil
		},
		existsByEmail: func(_ context.Context, email string) (bool, error) {
			_, ok := s.users[email]
			return ok, nil
		},
		create: func(_ context.Context, name, email, hash string) (int, error) {
			id := s.nextID
			s.nextID++
			s.users[email] = &domain.UserRow{ID: id, Name: name, Email: email, PasswordHash: hash}
			return id, nil
		},
	}
}

func (s *memStore) sessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		create: func(_ context.Context, userID int, token string, expiresAt time.Time) error {
			for _, u := range s.users {
				if u.ID == userID {
					s.sessions[token] = &domain.SessionRow{
						UserID: u.ID, Name: u.Name, Email: u.Email, ExpiresAt: expiresAt,
					}
					return nil
				}
			}
			return errors.New("unknown user")
		},
		getUserByToken: func(_ context.Context, token string) (*domain.SessionRow, error) {
			return s.sessions[token], nil
		},
		delete: func(_ context.Context, token string) error {
			delete(s.sessions, token)
			return nil
		},
	}
}

func registerReq() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		Confirm:  "s3cret",
	}
}

// ---- Register --------------------------------------------------------------

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	req := registerReq()
	req.Confirm = "different"

	_, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, logicv1.ErrPasswordMismatch)
	assert.Empty(t, store.users, "no user must be persisted on mismatch")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())

	assert.ErrorIs(t, err, logicv1.ErrUserExists)
	assert.Len(t, store.users, 1, "store size must be unchanged")
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	user, err := svc.Register(context.Background(), registerReq())

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)

	row := store.users["alice@example.com"]
	require.NotNil(t, row)
	assert.NotEqual(t, "s3cret", row.PasswordHash, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte("s3cret")))
}

// ---- Login -----------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Name)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	sess := store.sessions[resp.Token]
	require.NotNil(t, sess, "login must establish a session")
	assert.Equal(t, "alice@example.com", sess.Email)
}

func TestAuthService_Login_IdenticalErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})
	_, errWrongPw := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "not-the-password",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.ErrorIs(t, errUnknown, logicv1.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, logicv1.ErrInvalidCredentials)
	// Enumeration resistance: the sentinel's message is all a caller sees.
	assert.Equal(t,
		errors.Unwrap(errUnknown).Error(),
		errors.Unwrap(errWrongPw).Error(),
	)
}

func TestAuthService_RegisterThenLogin_RoundTrip(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	created, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, resp.User.ID)
	assert.Equal(t, created.Name, resp.User.Name)
	assert.Equal(t, created.Email, resp.User.Email)
}

// ---- Sessions --------------------------------------------------------------

func TestAuthService_CurrentUser_ValidSession(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), resp.Token)

	require.NoError(t, err)
	assert.Equal(t, resp.User, *user)
}

func TestAuthService_CurrentUser_UnknownToken(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	_, err := svc.CurrentUser(context.Background(), "no-such-token")

	assert.ErrorIs(t, err, logicv1.ErrSessionNotFound)
}

func TestAuthService_CurrentUser_ExpiredSession(t *testing.T) {
	sessions := &mockSessionRepo{
		getUserByToken: func(_ context.Context, _ string) (*domain.SessionRow, error) {
			return &domain.SessionRow{
				UserID: 1, Name: "alice", Email: "alice@example.com",
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
	}
	svc := logicv1.NewAuthService(&mockUserRepo{}, sessions, time.Hour)

	_, err := svc.CurrentUser(context.Background(), "stale")

	assert.ErrorIs(t, err, logicv1.ErrSessionExpired)
}

func TestAuthService_Logout_DestroysSession(t *testing.T) {
	store := newMemStore()
	svc := logicv1.NewAuthService(store.userRepo(), store.sessionRepo(), time.Hour)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	_, err = svc.CurrentUser(context.Background(), resp.Token)
	assert.ErrorIs(t, err, logicv1.ErrSessionNotFound)
}
