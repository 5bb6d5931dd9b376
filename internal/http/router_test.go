package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hockey-union/backend/internal/config"
	"hockey-union/backend/internal/domain/event"
	"hockey-union/backend/internal/domain/feed"
	"hockey-union/backend/internal/domain/player"
	"hockey-union/backend/internal/domain/team"
	"hockey-union/backend/internal/domain/user"
	apihttp "hockey-union/backend/internal/http"
	"hockey-union/backend/internal/seed"
	"hockey-union/backend/internal/storage/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	kv := memory.New()
	log := zerolog.Nop()

	teamRepo := team.NewRepo(kv, log)
	playerRepo := player.NewRepo(kv, log)
	eventRepo := event.NewRepo(kv, log)
	userRepo := user.NewRepo(kv, log)
	feedRepo := feed.NewRepo(kv, log)

	return apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:       config.Config{},
		TeamSvc:   team.NewService(teamRepo, playerRepo, eventRepo),
		PlayerSvc: player.NewService(playerRepo),
		EventSvc:  event.NewService(eventRepo),
		UserSvc:   user.NewService(userRepo),
		FeedSvc:   feed.NewService(feedRepo),
		Reset: func(ctx context.Context) error {
			return seed.Reset(ctx, kv)
		},
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "admin", "password": "password", "name": "Admin User",
	})
	require.Equal(t, 201, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, 200, rec.Code)
}

func TestMutationsRequireSession(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/teams", map[string]string{
		"name": "Windhoek Warriors", "category": "Men", "division": "Premier",
	})
	require.Equal(t, 401, rec.Code)
}

func TestTeamLifecycleOverHTTP(t *testing.T) {
	h := newTestRouter(t)
	login(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/teams", map[string]string{
		"name": "Windhoek Warriors", "category": "Men", "division": "Premier",
	})
	require.Equal(t, 201, rec.Code)

	var created team.Team
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, h, http.MethodGet, "/v1/teams/"+created.ID, nil)
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/v1/teams/"+created.ID, nil)
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/teams/"+created.ID, nil)
	require.Equal(t, 404, rec.Code)
}

func TestDuplicateUsernameMapsToConflict(t *testing.T) {
	h := newTestRouter(t)
	login(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "admin", "password": "other", "name": "Impostor",
	})
	require.Equal(t, 409, rec.Code)
}

func TestBadCredentialsMapToUnauthorized(t *testing.T) {
	h := newTestRouter(t)
	login(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", map[string]string{
		"username": "admin", "password": "wrong",
	})
	require.Equal(t, 401, rec.Code)
}

func TestAnnouncementCreatesNotification(t *testing.T) {
	h := newTestRouter(t)
	login(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/announcements", map[string]string{
		"title": "Season opens", "content": "First whistle in June",
	})
	require.Equal(t, 201, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/notifications", nil)
	require.Equal(t, 200, rec.Code)

	var notifications []feed.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifications))
	require.Len(t, notifications, 1)
	require.Equal(t, "announcement", notifications[0].Type)
}

func TestResetRequiresAdminRole(t *testing.T) {
	h := newTestRouter(t)
	login(t, h) // default role is member

	rec := doJSON(t, h, http.MethodPost, "/v1/admin/reset", nil)
	require.Equal(t, 403, rec.Code)
}

func TestResetWipesCollections(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/register", map[string]string{
		"username": "root", "password": "password", "name": "Root", "role": "admin",
	})
	require.Equal(t, 201, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/v1/teams", map[string]string{
		"name": "Windhoek Warriors", "category": "Men", "division": "Premier",
	})
	require.Equal(t, 201, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/v1/admin/reset", nil)
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/teams", nil)
	require.Equal(t, 200, rec.Code)

	var teams []team.Team
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teams))
	require.Empty(t, teams)
}

func TestMeReflectsSessionState(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/me", nil)
	require.Equal(t, 401, rec.Code)

	login(t, h)

	rec = doJSON(t, h, http.MethodGet, "/v1/me", nil)
	require.Equal(t, 200, rec.Code)

	var s user.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	require.Equal(t, "admin", s.Username)

	rec = doJSON(t, h, http.MethodPost, "/v1/auth/logout", nil)
	require.Equal(t, 200, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/me", nil)
	require.Equal(t, 401, rec.Code)
}
