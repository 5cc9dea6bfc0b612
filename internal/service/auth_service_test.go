package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubsite/internal/apperrors"
	"clubsite/internal/auth"
	"clubsite/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		userName     string
		email        string
		password     string
		setupMock    func(*MockUserRepository)
		wantErr      bool
		wantConflict bool
	}{
		{
			name:     "successful registration",
			userName: "Alice",
			email:    "a@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "email already registered",
			userName: "Bob",
			email:    "taken@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@x.com").Return(&model.User{Email: "taken@x.com"}, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			user, token, err := service.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
				if tt.wantConflict {
					var conflict *apperrors.ConflictError
					assert.ErrorAs(t, err, &conflict)
					assert.Equal(t, "User already exists", conflict.Message)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.userName, user.Name)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), 10)
	stored := &model.User{
		Name:         "Alice",
		Email:        "a@x.com",
		PasswordHash: string(hashed),
		Role:         model.RoleUser,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "a@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			user, token, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_LoginErrorsIdentical(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), 10)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
		Email:        "a@x.com",
		PasswordHash: string(hashed),
	}, nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))

	_, _, errUnknown := service.Login(context.Background(), "nobody@x.com", "secret1")
	_, _, errWrongPass := service.Login(context.Background(), "a@x.com", "wrong")

	assert.Error(t, errUnknown)
	assert.Error(t, errWrongPass)
	assert.Equal(t, errUnknown, errWrongPass)
	assert.Equal(t, "Invalid credentials", errUnknown.Error())
}
