package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && u.ID == "" {
		u.ID = "u-1"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockPasswordResetRepository struct {
	mock.Mock
}

func (m *MockPasswordResetRepository) Create(ctx context.Context, pr *domain.PasswordReset) error {
	args := m.Called(ctx, pr)
	return args.Error(0)
}

func (m *MockPasswordResetRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.PasswordReset, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordReset), args.Error(1)
}

func (m *MockPasswordResetRepository) MarkUsed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendResetCode(email, code string) error {
	args := m.Called(email, code)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID string, role string) (string, error) {
	return "token-" + userID, nil
}

func newTestService(users *MockUserRepository, resets *MockPasswordResetRepository, mailer Mailer) *Service {
	return &Service{
		users:        users,
		resets:       resets,
		jwt:          stubJWT{},
		mailer:       mailer,
		resetCodeTTL: 15 * time.Minute,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users, new(MockPasswordResetRepository), LogMailer{})

	users.On("ExistsByEmail", mock.Anything, "Admin@Example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		if u.Email != "admin@example.com" || u.Role != domain.RoleAdmin {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
	})).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Admin@Example.com",
		Password: "secret123",
		Name:     "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-u-1", result.Token)
	assert.Empty(t, result.User.PasswordHash)

	users.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users, new(MockPasswordResetRepository), LogMailer{})

	users.On("ExistsByEmail", mock.Anything, "admin@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users, new(MockPasswordResetRepository), LogMailer{})

	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           "u-1",
		Email:        "admin@example.com",
		PasswordHash: hashPassword(t, "correct"),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users, new(MockPasswordResetRepository), LogMailer{})

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccessStripsHash(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users, new(MockPasswordResetRepository), LogMailer{})

	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           "u-1",
		Email:        "admin@example.com",
		PasswordHash: hashPassword(t, "secret123"),
		Role:         domain.RoleAdmin,
	}, nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-u-1", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestRequestPasswordResetStoresHashedCode(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockPasswordResetRepository)
	mailer := new(MockMailer)
	svc := newTestService(users, resets, mailer)

	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:    "u-1",
		Email: "admin@example.com",
	}, nil)

	var sentCode string
	mailer.On("SendResetCode", "admin@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sentCode = args.String(1) }).
		Return(nil)
	resets.On("Create", mock.Anything, mock.MatchedBy(func(pr *domain.PasswordReset) bool {
		return pr.Email == "admin@example.com" &&
			len(pr.CodeHash) == 64 &&
			pr.ExpiresAt.After(time.Now())
	})).Return(nil)

	err := svc.RequestPasswordReset(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.Len(t, sentCode, 6)

	resets.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestRequestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockPasswordResetRepository)
	svc := newTestService(users, resets, LogMailer{})

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	resets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVerifyResetCode(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockPasswordResetRepository)
	svc := newTestService(users, resets, LogMailer{})

	resets.On("GetActiveByEmail", mock.Anything, "admin@example.com").Return(&domain.PasswordReset{
		ID:       "pr-1",
		Email:    "admin@example.com",
		CodeHash: hashResetCode("123456"),
	}, nil)

	verified, err := svc.VerifyResetCode(context.Background(), "admin@example.com", "123456")
	require.NoError(t, err)
	assert.True(t, verified)

	verified, err = svc.VerifyResetCode(context.Background(), "admin@example.com", "000000")
	require.NoError(t, err)
	assert.False(t, verified)
}

func TestResetPasswordFlow(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockPasswordResetRepository)
	svc := newTestService(users, resets, LogMailer{})

	resets.On("GetActiveByEmail", mock.Anything, "admin@example.com").Return(&domain.PasswordReset{
		ID:       "pr-1",
		Email:    "admin@example.com",
		CodeHash: hashResetCode("123456"),
	}, nil)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           "u-1",
		Email:        "admin@example.com",
		PasswordHash: hashPassword(t, "old-password"),
	}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-password")) == nil
	})).Return(nil)
	resets.On("MarkUsed", mock.Anything, "pr-1").Return(nil)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:       "admin@example.com",
		Code:        "123456",
		NewPassword: "new-password",
	})
	require.NoError(t, err)

	resets.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestResetPasswordWrongCode(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockPasswordResetRepository)
	svc := newTestService(users, resets, LogMailer{})

	resets.On("GetActiveByEmail", mock.Anything, "admin@example.com").Return(&domain.PasswordReset{
		ID:       "pr-1",
		CodeHash: hashResetCode("123456"),
	}, nil)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:       "admin@example.com",
		Code:        "999999",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users, new(MockPasswordResetRepository), LogMailer{})

	users.On("GetByID", mock.Anything, "u-1").Return(&domain.User{
		ID:           "u-1",
		PasswordHash: hashPassword(t, "correct"),
	}, nil)

	err := svc.ChangePassword(context.Background(), "u-1", ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "next",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users, new(MockPasswordResetRepository), LogMailer{})

	users.On("GetByID", mock.Anything, "u-1").Return(&domain.User{
		ID:    "u-1",
		Email: "admin@example.com",
	}, nil)
	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := svc.UpdateProfile(context.Background(), "u-1", UpdateProfileRequest{
		Name:  "Admin",
		Email: "taken@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}
