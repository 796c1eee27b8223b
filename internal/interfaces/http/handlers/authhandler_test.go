package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDto "github.com/lorenzobigazzi0/cassa/internal/application/user/dto"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/http/handlers/testutil"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

func TestAuthHandler_Login(t *testing.T) {
	loginUC := &mockLoginUC{result: &userDto.LoginResponse{AccessToken: "tok", TokenType: "bearer"}}
	h := NewAuthHandler(loginUC, &mockGetMeUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{"username": "emma", "password": "1234"})
	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emma", loginUC.got.Username)
	resp, err := testutil.ParseAPIResponse(w)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.JSONEq(t, `{"access_token":"tok","token_type":"bearer","expires_in":0,"user":null}`, string(resp.Data))
}

func TestAuthHandler_LoginErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     interface{}
		ucErr    error
		wantCode int
	}{
		{"missing password", map[string]string{"username": "emma"}, nil, http.StatusBadRequest},
		{"bad credentials", map[string]string{"username": "emma", "password": "x"}, errors.NewUnauthenticatedError("invalid username or password"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockLoginUC{err: tt.ucErr}, &mockGetMeUC{}, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", tt.body)
			h.Login(c)

			assert.Equal(t, tt.wantCode, w.Code)
			resp, err := testutil.ParseAPIResponse(w)
			require.NoError(t, err)
			assert.False(t, resp.Success)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&mockLoginUC{}, &mockGetMeUC{result: &userDto.UserResponse{ID: 3, Username: "emma", Role: "WAITER"}}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/me", nil)
	testutil.SetAuthContext(c, 3, "WAITER")
	h.Me(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp, err := testutil.ParseAPIResponse(w)
	require.NoError(t, err)
	assert.Contains(t, string(resp.Data), `"username":"emma"`)
}
