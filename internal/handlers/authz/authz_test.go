package authz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/pkg/auth"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		role    domain.Role
		allowed bool
	}{
		{"Employee on employee surface", "/api/employee/balance", domain.RoleEmployee, true},
		{"Employee on hr surface", "/api/hr/employees", domain.RoleEmployee, false},
		{"Employee on admin surface", "/api/admin/companies", domain.RoleEmployee, false},
		{"HR on hr surface", "/api/hr/transactions", domain.RoleHR, true},
		{"HR on admin surface", "/api/admin/companies", domain.RoleHR, false},
		{"HR on employee surface", "/api/employee/balance", domain.RoleHR, false},
		{"Admin on hr surface", "/api/hr/employees", domain.RoleAdmin, true},
		{"Admin on admin surface", "/api/admin/companies", domain.RoleAdmin, true},
		{"Exact prefix match", "/api/admin", domain.RoleAdmin, true},
		{"Prefix lookalike not gated", "/api/administrator", domain.RoleEmployee, true},
		{"Ungated path", "/swagger/index.html", domain.RoleEmployee, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, Allowed(tt.path, tt.role))
		})
	}
}

func TestMiddleware(t *testing.T) {
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile := FromContext(r.Context())
		assert.NotNil(t, profile)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		path         string
		withUser     bool
		prepareMock  func(profiles *MockProfileService)
		expectedCode int
	}{
		{
			name:     "Role admitted",
			path:     "/api/employee/balance",
			withUser: true,
			prepareMock: func(profiles *MockProfileService) {
				profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(&domain.Profile{
					ID:   userID,
					Role: domain.RoleEmployee,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Role rejected",
			path:     "/api/admin/companies",
			withUser: true,
			prepareMock: func(profiles *MockProfileService) {
				profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(&domain.Profile{
					ID:   userID,
					Role: domain.RoleEmployee,
				}, nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:     "Profile lookup fails",
			path:     "/api/employee/balance",
			withUser: true,
			prepareMock: func(profiles *MockProfileService) {
				profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errors.New("profile not found"))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Missing user id",
			path:         "/api/employee/balance",
			prepareMock:  func(profiles *MockProfileService) {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			profiles := NewMockProfileService(ctrl)
			tt.prepareMock(profiles)

			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.withUser {
				r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
			}
			w := httptest.NewRecorder()

			Middleware(profiles)(next).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
