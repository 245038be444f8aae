package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/security"
	"rentwheels-backend/internal/service"
)

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesCustomerAndIssuesTokens", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Name == "Ana" && u.Email == "ana@test.com" && u.Role == domain.RoleCustomer && u.PasswordHash != "secret-password"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil).Once()
		tokens.On("GenerateAccessToken", int32(7), "ana@test.com", domain.RoleCustomer).Return("access", nil).Once()
		tokens.On("GenerateRefreshToken", int32(7), "ana@test.com").Return("refresh", nil).Once()

		user, access, refresh, err := svc.Signup(ctx, "Ana", " Ana@Test.com ", "secret-password")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
		assert.Equal(t, "access", access)
		assert.Equal(t, "refresh", refresh)
		userRepo.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("RejectsShortPassword", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), new(MockTokenManager))
		_, _, _, err := svc.Signup(ctx, "Ana", "ana@test.com", "short")
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("RejectsMissingName", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), new(MockTokenManager))
		_, _, _, err := svc.Signup(ctx, "  ", "ana@test.com", "secret-password")
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("SurfacesDuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockTokenManager))
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrEmailTaken).Once()

		_, _, _, err := svc.Signup(ctx, "Ana", "ana@test.com", "secret-password")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &domain.User{ID: 7, Email: "ana@test.com", PasswordHash: string(hash), Role: domain.RoleCustomer}

	t.Run("ValidCredentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "ana@test.com").Return(stored, nil).Once()
		tokens.On("GenerateAccessToken", int32(7), "ana@test.com", domain.RoleCustomer).Return("access", nil).Once()
		tokens.On("GenerateRefreshToken", int32(7), "ana@test.com").Return("refresh", nil).Once()

		user, access, _, err := svc.Login(ctx, "Ana@Test.com", "secret-password")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
		assert.Equal(t, "access", access)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockTokenManager))
		userRepo.On("GetByEmail", ctx, "ana@test.com").Return(stored, nil).Once()

		_, _, _, err := svc.Login(ctx, "ana@test.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("UnknownEmailLooksLikeBadCredentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockTokenManager))
		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, domain.ErrUserNotFound).Once()

		_, _, _, err := svc.Login(ctx, "nobody@test.com", "secret-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	stored := &domain.User{ID: 7, Email: "ana@test.com", Role: domain.RoleCustomer}

	t.Run("RotatesTokenPair", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		tokens.On("ValidateToken", "old-refresh").Return(&security.UserClaims{UserID: 7, Type: security.TokenTypeRefresh}, nil).Once()
		userRepo.On("GetByID", ctx, int32(7)).Return(stored, nil).Once()
		tokens.On("GenerateAccessToken", int32(7), "ana@test.com", domain.RoleCustomer).Return("new-access", nil).Once()
		tokens.On("GenerateRefreshToken", int32(7), "ana@test.com").Return("new-refresh", nil).Once()

		access, refresh, err := svc.RefreshToken(ctx, "old-refresh")
		assert.NoError(t, err)
		assert.Equal(t, "new-access", access)
		assert.Equal(t, "new-refresh", refresh)
	})

	t.Run("RejectsAccessTokenAsRefresh", func(t *testing.T) {
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(new(MockUserRepo), tokens)
		tokens.On("ValidateToken", "an-access-token").Return(&security.UserClaims{UserID: 7, Type: security.TokenTypeAccess}, nil).Once()

		_, _, err := svc.RefreshToken(ctx, "an-access-token")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("RejectsInvalidToken", func(t *testing.T) {
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(new(MockUserRepo), tokens)
		tokens.On("ValidateToken", "garbage").Return(nil, security.ErrInvalidToken).Once()

		_, _, err := svc.RefreshToken(ctx, "garbage")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
