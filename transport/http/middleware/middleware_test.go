package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careerday/config"
	"careerday/infras/jwt"
	jwtMocks "careerday/infras/jwt/mocks"
	otelMocks "careerday/infras/otel/mocks"
	"careerday/permissions"
	cacheMocks "careerday/shared/cache/mocks"
	"careerday/shared/constant"
	"careerday/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 30

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		hits       int64
		cacheErr   error
		wantStatus int
		wantLeft   string
	}{
		{name: "first request", hits: 1, wantStatus: http.StatusNoContent, wantLeft: "1"},
		{name: "last allowed", hits: 2, wantStatus: http.StatusNoContent, wantLeft: "0"},
		{name: "over limit", hits: 3, wantStatus: http.StatusTooManyRequests, wantLeft: "0"},
		{name: "cache down", cacheErr: errors.New("connection refused"), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			cache.EXPECT().
				Incr(gomock.Any(), "limiter:10.0.0.7:probe", 30*time.Second).
				Return(tt.hits, tt.cacheErr)

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(), cache)

			req := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
			req.RemoteAddr = "10.0.0.7:53211"
			req.Header.Set("User-Agent", "probe")

			rec := httptest.NewRecorder()
			app.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLeft, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))

			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Equal(t, "30", rec.Header().Get(constant.RequestHeaderRetryAfter))
			}
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, cache)

	rec := httptest.NewRecorder()
	app.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/slots", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

const table = `{"endpoints":[
	{"path":"/v1/slots","method":"GET","skip":true},
	{"path":"/v1/events","method":"POST","permissions":["organizer"]},
	{"path":"/v1/events/{eventID}","method":"GET","permissions":["attendee","company","organizer"]}
]}`

func newAuthRouter(t *testing.T, validator jwt.JWT, apiKey string) http.Handler {
	t.Helper()

	perms, err := permissions.Parse([]byte(table))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	auth := middleware.NewAuthRoleMiddleware(validator, otelMocks.NewOtel(), perms, cfg)

	r := chi.NewRouter()
	r.Use(auth.APIKey, auth.Auth, auth.RBAC)
	r.Get("/v1/slots", ok)
	r.Post("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusCreated)
	})
	r.Get("/v1/events/{eventID}", ok)

	return r
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		header     map[string]string
		claims     *jwt.Claims
		claimsErr  error
		wantStatus int
	}{
		{
			name:       "public route needs no token",
			method:     http.MethodGet,
			path:       "/v1/slots",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing token",
			method:     http.MethodGet,
			path:       "/v1/events/e1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			method:     http.MethodGet,
			path:       "/v1/events/e1",
			header:     map[string]string{"Authorization": "Bearer stale"},
			claimsErr:  jwt.ErrExpiredToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "attendee reads event",
			method:     http.MethodGet,
			path:       "/v1/events/e1",
			header:     map[string]string{"Authorization": "Bearer good"},
			claims:     &jwt.Claims{UserID: "ada@example.com", Role: constant.RoleAttendee},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "attendee cannot create events",
			method:     http.MethodPost,
			path:       "/v1/events",
			header:     map[string]string{"Authorization": "Bearer good"},
			claims:     &jwt.Claims{UserID: "ada@example.com", Role: constant.RoleAttendee},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "api key acts as organizer",
			method:     http.MethodPost,
			path:       "/v1/events",
			header:     map[string]string{"X-API-Key": "k3y"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "wrong api key",
			method:     http.MethodPost,
			path:       "/v1/events",
			header:     map[string]string{"X-API-Key": "nope"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := jwtMocks.NewMockJWT(ctrl)

			if tt.claims != nil || tt.claimsErr != nil {
				validator.EXPECT().ValidateToken(gomock.Any()).Return(tt.claims, tt.claimsErr)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			newAuthRouter(t, validator, "k3y").ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, constant.RoleOrganizer, rec.Header().Get("X-Role"))
			}
		})
	}
}
