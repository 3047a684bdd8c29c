package user

import (
	"context"
	"errors"
	"testing"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVerificationKey = "0123456789abcdef"

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return *u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return domain.User{}, errors.New("user not found")
}

func (f *fakeUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return *u, nil
		}
	}
	return domain.User{}, errors.New("user not found")
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	existing, ok := f.users[user.ID]
	if !ok {
		return errors.New("user not found")
	}
	*existing = *user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.users[id]; !ok {
		return errors.New("user not found")
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) UpdateEmailVerification(ctx context.Context, id uint, isVerified bool) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.IsVerified = isVerified
	return nil
}

type fakeNotifRepo struct {
	sent int
}

func (f *fakeNotifRepo) SendEmail(toName, toEmail, subject, message string) error {
	f.sent++
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]string
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]string)}
}

func (f *fakeTokenRepo) StoreToken(ctx context.Context, token, userID string) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenRepo) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return "", errors.New("token not found")
	}
	return userID, nil
}

func (f *fakeTokenRepo) RevokeToken(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func newTestService(userRepo *fakeUserRepo, notifRepo *fakeNotifRepo, tokenRepo *fakeTokenRepo) *userService {
	utils.InitJWT("test-secret")
	return NewUserService(userRepo, validator.New(), notifRepo, tokenRepo, testVerificationKey, "http://localhost:8080")
}

func TestRegister_HashesPasswordAndIssuesTokens(t *testing.T) {
	userRepo := newFakeUserRepo()
	notifRepo := &fakeNotifRepo{}
	tokenRepo := newFakeTokenRepo()
	svc := newTestService(userRepo, notifRepo, tokenRepo)

	access, refresh, created, err := svc.Register(context.Background(), &domain.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, domain.RoleCustomer, created.Role)
	assert.False(t, created.IsVerified)
	assert.Empty(t, created.Password)

	// Stored hash verifies against the plaintext but never equals it.
	stored := userRepo.users[created.ID]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.CheckPassword("secret123", stored.Password))

	assert.Equal(t, 1, notifRepo.sent)
	assert.Len(t, tokenRepo.tokens, 1)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestService(userRepo, &fakeNotifRepo{}, newFakeTokenRepo())

	_, _, _, err := svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "other@example.com", Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, "user already exists", err.Error())
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeNotifRepo{}, newFakeTokenRepo())

	_, _, _, err := svc.Register(context.Background(), &domain.User{
		Username: "bob", Email: "bob@example.com", Password: "secret123", Role: "superuser",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid role", err.Error())
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeNotifRepo{}, newFakeTokenRepo())

	_, _, _, err := svc.Register(context.Background(), &domain.User{
		Username: "bob", Email: "bob@example.com", Password: "abc",
	})
	require.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	svc := newTestService(userRepo, &fakeNotifRepo{}, tokenRepo)

	_, _, _, err := svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	access, refresh, user, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)

	claims, err := utils.ParseJWT(access)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeNotifRepo{}, newFakeTokenRepo())

	_, _, _, err := svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLogin_UnverifiedUserAllowed(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeNotifRepo{}, newFakeTokenRepo())

	_, _, created, err := svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.False(t, created.IsVerified)

	_, _, _, err = svc.Login(context.Background(), "alice@example.com", "secret123")
	assert.NoError(t, err)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeNotifRepo{}, newFakeTokenRepo())

	access, _, _, err := svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.RefreshToken(context.Background(), access)
	require.Error(t, err)
	assert.Equal(t, "invalid refresh token", err.Error())
}

func TestRefreshToken_IssuesNewAccessToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeNotifRepo{}, newFakeTokenRepo())

	_, refresh, _, err := svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	access, user, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.Equal(t, "alice", user.Username)
}

func TestLogout_RevokesSession(t *testing.T) {
	tokenRepo := newFakeTokenRepo()
	svc := newTestService(newFakeUserRepo(), &fakeNotifRepo{}, tokenRepo)

	access, _, created, err := svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), created.ID, access))

	_, err = svc.ValidateTokenFromRedis(context.Background(), access)
	assert.Error(t, err)
}

func TestUpdateUser_RejectsTakenEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeNotifRepo{}, newFakeTokenRepo())

	_, _, alice, err := svc.Register(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	_, _, _, err = svc.Register(context.Background(), &domain.User{
		Username: "bob", Email: "bob@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), alice.ID, &domain.User{Email: "bob@example.com"})
	require.Error(t, err)
	assert.Equal(t, "email already exists", err.Error())
}
