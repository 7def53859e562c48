package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "hr@acme.example",
			password: "password123",
			role:     model.RoleEmployer,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "hr@acme.example").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "duplicate email conflicts",
			email:    "existing@acme.example",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@acme.example").Return(&model.User{Email: "existing@acme.example"}, nil)
			},
			expectedError: apperrors.ErrConflict,
		},
		{
			name:     "duplicate email conflicts case-insensitively",
			email:    "Existing@Acme.Example",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				// The service lowercases before the lookup.
				m.On("FindByEmail", mock.Anything, "existing@acme.example").Return(&model.User{Email: "existing@acme.example"}, nil)
			},
			expectedError: apperrors.ErrConflict,
		},
		{
			name:          "missing email rejected",
			email:         "",
			password:      "password123",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "missing password rejected",
			email:         "hr@acme.example",
			password:      "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "unknown role rejected",
			email:         "hr@acme.example",
			password:      "password123",
			role:          "candidate",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			user, err := service.Register(context.Background(), tt.email, tt.password, tt.role, "Test User", nil)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, "hr@acme.example", user.Email)
				assert.Equal(t, model.RoleEmployer, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RegisterDefaultsRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "hr@acme.example").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
	user, err := service.Register(context.Background(), "hr@acme.example", "password123", "", "Test User", nil)

	assert.NoError(t, err)
	assert.Equal(t, model.RoleEmployer, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "hr@acme.example",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "hr@acme.example").Return(&model.User{
					Email:        "hr@acme.example",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleEmployer,
				}, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@acme.example",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@acme.example").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "hr@acme.example",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "hr@acme.example").Return(&model.User{
					Email:        "hr@acme.example",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_LoginNoEnumerationSignal(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "known@acme.example").Return(&model.User{
		Email:        "known@acme.example",
		PasswordHash: string(hashedPassword),
	}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "unknown@acme.example").Return(nil, gorm.ErrRecordNotFound)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))

	_, _, errWrongPassword := service.Login(context.Background(), "known@acme.example", "bad")
	_, _, errUnknownEmail := service.Login(context.Background(), "unknown@acme.example", "bad")

	assert.Equal(t, errWrongPassword, errUnknownEmail)
}

// A token issued by login resolves back to the same subject and role.
func TestAuthService_LoginTokenRoundTrip(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	user := &model.User{
		ID:           uuid.New(),
		Email:        "hr@acme.example",
		PasswordHash: string(hashedPassword),
		Role:         model.RoleAdmin,
	}
	jwtService := auth.NewJWTService("test-secret")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "hr@acme.example").Return(user, nil)

	service := NewAuthService(mockRepo, jwtService)
	token, logged, err := service.Login(context.Background(), "hr@acme.example", "password123")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, logged.ID.String(), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)

	// A tampered token never validates.
	_, err = jwtService.ValidateToken(token + "x")
	assert.Error(t, err)
}
