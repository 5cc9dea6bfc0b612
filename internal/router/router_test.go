package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/internal/apperrors"
	"clubsite/internal/auth"
	"clubsite/internal/config"
	"clubsite/internal/handler"
	"clubsite/internal/model"
	"clubsite/internal/service"
)

const testSecret = "router-test-secret"

// stubUsers resolves ids to canned user records, as the auth middleware would
// from the database.
type stubUsers struct {
	users map[uuid.UUID]*model.User
}

func (s *stubUsers) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("User")
	}
	return user, nil
}

// stubPlayers records whether a mutation got through the middleware chain.
type stubPlayers struct {
	created int
	deleted int
}

func (s *stubPlayers) Create(ctx context.Context, player *model.Player) (*model.Player, error) {
	s.created++
	player.ID = uuid.New()
	return player, nil
}

func (s *stubPlayers) List(ctx context.Context) ([]model.Player, error) {
	return []model.Player{}, nil
}

func (s *stubPlayers) Get(ctx context.Context, id uuid.UUID) (*model.Player, error) {
	return nil, apperrors.NewNotFound("Player")
}

func (s *stubPlayers) Update(ctx context.Context, id uuid.UUID, upd service.PlayerUpdate) (*model.Player, error) {
	return nil, apperrors.NewNotFound("Player")
}

func (s *stubPlayers) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted++
	return nil
}

func newTestServer(t *testing.T) (*echo.Echo, *stubPlayers, string, string) {
	t.Helper()

	adminID := uuid.New()
	userID := uuid.New()

	users := &stubUsers{users: map[uuid.UUID]*model.User{
		adminID: {ID: adminID, Name: "Admin", Email: "admin@x.com", Role: model.RoleAdmin},
		userID:  {ID: userID, Name: "Fan", Email: "fan@x.com", Role: model.RoleUser},
	}}
	players := &stubPlayers{}

	e := echo.New()
	cfg := &config.Config{JWTSecret: testSecret}
	Register(
		e,
		cfg,
		users,
		handler.NewAuthHandler(nil),
		handler.NewPlayerHandler(players),
		handler.NewMatchHandler(nil),
		handler.NewNewsHandler(nil),
		handler.NewGalleryHandler(nil),
	)

	jwtService := auth.NewJWTService(testSecret)
	adminToken, err := jwtService.GenerateToken(adminID)
	require.NoError(t, err)
	userToken, err := jwtService.GenerateToken(userID)
	require.NoError(t, err)

	return e, players, adminToken, userToken
}

const playerPayload = `{"name":"Luis Moreno","position":"Forward","number":9,"age":26,"nationality":"Spain"}`

func TestRouter_PublicReads(t *testing.T) {
	e, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MutationAuthMatrix(t *testing.T) {
	tests := []struct {
		name       string
		token      func(adminToken, userToken string) string
		wantStatus int
		wantWrites int
	}{
		{
			name:       "no token",
			token:      func(a, u string) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			token:      func(a, u string) string { return "not-a-jwt" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid non-admin token",
			token:      func(a, u string) string { return u },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin token",
			token:      func(a, u string) string { return a },
			wantStatus: http.StatusCreated,
			wantWrites: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, players, adminToken, userToken := newTestServer(t)

			req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(playerPayload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if token := tt.token(adminToken, userToken); token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantWrites, players.created)

			// Every failure carries a human-readable message
			if tt.wantStatus != http.StatusCreated {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestRouter_InvalidTokenForUnknownUser(t *testing.T) {
	e, players, _, _ := newTestServer(t)

	// Validly signed token whose subject no longer exists
	orphanToken, err := auth.NewJWTService(testSecret).GenerateToken(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(playerPayload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+orphanToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, players.created)
}

func TestRouter_ValidationFailureListsFields(t *testing.T) {
	e, _, adminToken, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(`{"name":"No Position"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Fields)
}
