package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgf281219-blip/metodo/models"
)

func fakeIdentityProvider(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Session-ID"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestProcessSessionCreatesUserAndSession(t *testing.T) {
	db := newTestDB(t)
	ts := fakeIdentityProvider(t, http.StatusOK,
		`{"id":"x1","email":"ana@example.com","name":"Ana","picture":null,"session_token":"tok-123"}`)
	svc := NewAuthService(db, NewIdentityService(ts.URL))

	user, token, err := svc.ProcessSession("one-time-id")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Regexp(t, `^user_[0-9a-f]{12}$`, user.UserID)

	var session models.UserSession
	require.NoError(t, db.Where("session_token = ?", "tok-123").First(&session).Error)
	assert.Equal(t, user.UserID, session.UserID)
	assert.WithinDuration(t, time.Now().UTC().Add(SessionTTL), session.ExpiresAt, time.Minute)
}

func TestProcessSessionReusesExistingUser(t *testing.T) {
	db := newTestDB(t)
	existing := createTestUser(t, db, "user_known000001")
	require.NoError(t, db.Model(existing).Update("email", "ana@example.com").Error)

	ts := fakeIdentityProvider(t, http.StatusOK,
		`{"id":"x1","email":"ana@example.com","name":"Ana","picture":null,"session_token":"tok-456"}`)
	svc := NewAuthService(db, NewIdentityService(ts.URL))

	user, _, err := svc.ProcessSession("one-time-id")
	require.NoError(t, err)
	assert.Equal(t, "user_known000001", user.UserID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProcessSessionExchangeFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"provider rejects", http.StatusUnauthorized, `{"detail":"bad session"}`},
		{"malformed payload", http.StatusOK, `not json`},
		{"missing token", http.StatusOK, `{"email":"ana@example.com","name":"Ana"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			ts := fakeIdentityProvider(t, tt.status, tt.body)
			svc := NewAuthService(db, NewIdentityService(ts.URL))

			_, _, err := svc.ProcessSession("one-time-id")
			assert.ErrorIs(t, err, ErrInvalidSession)

			var count int64
			require.NoError(t, db.Model(&models.UserSession{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestUserForToken(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user_abc")
	require.NoError(t, db.Create(&models.UserSession{
		UserID:       user.UserID,
		SessionToken: "valid-token",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}).Error)

	svc := NewAuthService(db, nil)

	got, err := svc.UserForToken("valid-token")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user_abc", got.UserID)

	got, err = svc.UserForToken("unknown-token")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.UserForToken("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserForTokenExpiredSessionKeptInStore(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user_abc")
	require.NoError(t, db.Create(&models.UserSession{
		UserID:       user.UserID,
		SessionToken: "stale-token",
		ExpiresAt:    time.Now().UTC().Add(-time.Hour),
	}).Error)

	svc := NewAuthService(db, nil)

	got, err := svc.UserForToken("stale-token")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Lapsed sessions stay queryable until explicit logout.
	var count int64
	require.NoError(t, db.Model(&models.UserSession{}).
		Where("session_token = ?", "stale-token").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserForTokenOrphanSession(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.UserSession{
		UserID:       "user_gone",
		SessionToken: "orphan-token",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}).Error)

	svc := NewAuthService(db, nil)

	got, err := svc.UserForToken("orphan-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLogoutDeletesSession(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user_abc")
	require.NoError(t, db.Create(&models.UserSession{
		UserID:       user.UserID,
		SessionToken: "valid-token",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}).Error)

	svc := NewAuthService(db, nil)
	require.NoError(t, svc.Logout("valid-token"))

	var count int64
	require.NoError(t, db.Model(&models.UserSession{}).Count(&count).Error)
	assert.Zero(t, count)
}
