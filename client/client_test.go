package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/session"
)

func loggedIn(t *testing.T) *session.Memory {
	t.Helper()
	sess := &session.Memory{}
	require.NoError(t, sess.Set(&session.Session{
		AuthToken: "test-token",
		Role:      "CUSTOMER",
		UserID:    7,
		UserName:  "Asha",
	}))
	return sess
}

func TestAuthenticatedRequestCarriesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]models.Booking{})
	}))
	defer server.Close()

	api := New(server.URL, loggedIn(t))
	_, err := api.MyBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestMissingSessionBlocksAuthenticatedCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the backend without a session")
	}))
	defer server.Close()

	api := New(server.URL, &session.Memory{})
	_, err := api.MyBookings(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Please login to continue", authErr.Message)
}

func TestLocallyExpiredTokenBlocksCall(t *testing.T) {
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &session.Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	sess := &session.Memory{}
	require.NoError(t, sess.Set(&session.Session{AuthToken: stale, UserID: 7}))

	api := New(server.URL, sess)
	_, err = api.MyBookings(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Session expired. Please login again.", authErr.Message)
	assert.Zero(t, requests, "an expired token never reaches the backend")

	stored, gerr := sess.Get()
	require.NoError(t, gerr)
	assert.Nil(t, stored, "expired session is cleared")
}

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	sess := loggedIn(t)
	api := New(server.URL, sess)
	_, err := api.MyBookings(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Session expired. Please login again.", authErr.Message)

	stored, err := sess.Get()
	require.NoError(t, err)
	assert.Nil(t, stored, "session must be cleared after a 401")
}

func TestBackendErrorCarriesMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Worker is not available at this time"})
	}))
	defer server.Close()

	api := New(server.URL, loggedIn(t))
	_, err := api.GetBooking(context.Background(), 1)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusConflict, backendErr.Status)
	assert.Equal(t, "Worker is not available at this time", backendErr.Message)
}

func TestBackendErrorFallsBackToErrorKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid booking id"})
	}))
	defer server.Close()

	api := New(server.URL, loggedIn(t))
	_, err := api.GetBooking(context.Background(), 1)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "invalid booking id", backendErr.Message)
}

func TestBackendErrorWithUnreadableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer server.Close()

	api := New(server.URL, loggedIn(t))
	_, err := api.GetBooking(context.Background(), 1)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "API request failed", backendErr.Message)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	api := New(server.URL, loggedIn(t))
	_, err := api.MyBookings(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestUpdateBookingStatusSendsForm(t *testing.T) {
	var gotContentType, gotStatus, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotStatus = r.PostFormValue("status")
	}))
	defer server.Close()

	api := New(server.URL, loggedIn(t))
	require.NoError(t, api.UpdateBookingStatus(context.Background(), 42, models.StatusConfirmed))

	assert.Equal(t, "/api/bookings/42/status", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "CONFIRMED", gotStatus)
}

func TestRejectWorkerEscapesReason(t *testing.T) {
	var gotReason string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReason = r.URL.Query().Get("rejectionReason")
	}))
	defer server.Close()

	api := New(server.URL, loggedIn(t))
	require.NoError(t, api.RejectWorker(context.Background(), 5, "Too far & unavailable"))
	assert.Equal(t, "Too far & unavailable", gotReason)
}

func TestSignInPopulatesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signIn", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "asha@example.com", creds.Email)

		json.NewEncoder(w).Encode(models.SignInResponse{
			JWT:       "issued-token",
			Role:      "CUSTOMER",
			UserID:    7,
			UserName:  "Asha",
			UserEmail: "asha@example.com",
		})
	}))
	defer server.Close()

	sess := &session.Memory{}
	api := New(server.URL, sess)
	result, err := api.SignIn(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", result.JWT)

	stored, err := sess.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "issued-token", stored.AuthToken)
	assert.Equal(t, uint(7), stored.UserID)
	assert.Equal(t, "CUSTOMER", stored.Role)
}

func TestSignInWithoutTokenFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	sess := &session.Memory{}
	api := New(server.URL, sess)
	_, err := api.SignIn(context.Background(), "asha@example.com", "wrong")

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "Login failed. Please check your credentials.", backendErr.Message)

	stored, err := sess.Get()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestWorkerProfileIsPublic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/worker-profile/3", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.WorkerProfile{ID: 3, Name: "Ravi", Rating: 4.8})
	}))
	defer server.Close()

	api := New(server.URL, &session.Memory{})
	profile, err := api.GetWorkerProfile(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", profile.Name)
}
