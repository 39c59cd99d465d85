package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roas-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{cfg: testConfig()}

	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "senha forte", password: "SenhaForte1", valid: true},
		{name: "muito curta", password: "Ab1", valid: false},
		{name: "sem maiúscula", password: "senhafraca1", valid: false},
		{name: "sem minúscula", password: "SENHAFRACA1", valid: false},
		{name: "sem dígito", password: "SenhaFraca", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tc.password)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{
		ID:           1,
		Name:         "Maria",
		Email:        "maria@exemplo.com",
		PasswordHash: hashPassword(t, "SenhaForte1"),
		Active:       true,
		RoleID:       1,
	}

	// O email deve ser normalizado antes da consulta
	mockUserRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(user, nil)

	token, err := service.LoginUser(" Maria@Exemplo.com ", "SenhaForte1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "Maria", claims.UserName)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestLoginUserInvalidPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{
		ID:           1,
		Email:        "maria@exemplo.com",
		PasswordHash: hashPassword(t, "SenhaForte1"),
		Active:       true,
	}

	mockUserRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(user, nil)

	_, err := service.LoginUser("maria@exemplo.com", "senha-errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{
		ID:           1,
		Email:        "maria@exemplo.com",
		PasswordHash: hashPassword(t, "SenhaForte1"),
		Active:       false,
	}

	mockUserRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(user, nil)

	_, err := service.LoginUser("maria@exemplo.com", "SenhaForte1")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	mockUserRepo.EXPECT().GetUserByEmail("ninguem@exemplo.com").Return(nil, nil)

	_, err := service.LoginUser("ninguem@exemplo.com", "SenhaForte1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenInvalid(t *testing.T) {
	service := NewService(nil, testConfig())

	_, err := service.ValidateToken("token-que-nao-e-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	mockUserRepo.EXPECT().GetUserByEmail("joao@exemplo.com").Return(nil, nil)
	mockUserRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// A senha nunca deve persistir em texto claro
			assert.NotEqual(t, "SenhaForte1", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("SenhaForte1")))
			assert.False(t, user.Active)
			assert.Equal(t, 3, user.RoleID)

			user.ID = 7
			return user, nil
		})

	user, err := service.CreateUser(&domain.User{
		Name:         "João",
		Lastname:     "Silva",
		Email:        " Joao@Exemplo.com",
		PasswordHash: "SenhaForte1",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "joao@exemplo.com", user.Email)
}

func TestCreateUserAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	mockUserRepo.EXPECT().GetUserByEmail("joao@exemplo.com").Return(&domain.User{ID: 7}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "João",
		Lastname:     "Silva",
		Email:        "joao@exemplo.com",
		PasswordHash: "SenhaForte1",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "AUTH_007", authErr.Code)
}

func TestCreateUserMissingData(t *testing.T) {
	service := NewService(nil, testConfig())

	_, err := service.CreateUser(&domain.User{Name: "João"})
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestGenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	mockUserRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7}, nil)

	var storedHash string
	mockUserRepo.EXPECT().
		UpdatePassword(7, gomock.Any()).
		DoAndReturn(func(userID int, passwordHash string) error {
			storedHash = passwordHash
			return nil
		})

	password, err := service.GenerateStrongPassword(7)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(password), 8)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)))
}

func TestGenerateStrongPasswordUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	mockUserRepo.EXPECT().GetUserByID(404).Return(nil, nil)

	_, err := service.GenerateStrongPassword(404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{ID: 7, PasswordHash: hashPassword(t, "SenhaAntiga1")}

	mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil)
	mockUserRepo.EXPECT().
		UpdatePassword(7, gomock.Any()).
		DoAndReturn(func(userID int, passwordHash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("SenhaNova1")))
			return nil
		})

	err := service.ChangePassword(7, "SenhaAntiga1", "SenhaNova1")
	require.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{ID: 7, PasswordHash: hashPassword(t, "SenhaAntiga1")}

	mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil)

	err := service.ChangePassword(7, "senha-errada", "SenhaNova1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordWeakNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{ID: 7, PasswordHash: hashPassword(t, "SenhaAntiga1")}

	mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil)

	err := service.ChangePassword(7, "SenhaAntiga1", "fraca")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}
