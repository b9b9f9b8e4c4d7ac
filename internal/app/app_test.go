package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/haguru/dispatcher/config"
	"github.com/haguru/dispatcher/pkg/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configPath = "../../res/config.yaml"

func newTestApp(t *testing.T, mutate func(*config.ServiceConfig)) *App {
	t.Helper()
	cfg, err := config.ReadLocalConfig(configPath)
	require.NoError(t, err)
	cfg.Port = "0"
	if mutate != nil {
		mutate(cfg)
	}

	app, err := NewAppFromConfig(cfg, zerolog.NewZerologLoggerWithWriter("test", io.Discard))
	require.NoError(t, err)
	return app
}

func postForm(t *testing.T, h http.Handler, form string) *httptest.ResponseRecorder {
	t.Helper()
	return postFormQuery(t, h, "", form)
}

func postFormQuery(t *testing.T, h http.Handler, query, form string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/CallServlet"+query, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestApp_Gate(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		form           url.Values
		wantStatusCode int
		wantPrefix     string
		wantContains   []string
	}{
		{
			name:           "java/servlet is forwarded to FwdDemo",
			form:           url.Values{"login": {"java"}, "pwd": {"servlet"}},
			wantStatusCode: http.StatusOK,
			wantContains:   []string{"Welcome java", "Forwarded from /CallServlet"},
		},
		{
			name:           "query string credentials are forwarded with the greeting",
			query:          "?login=java&pwd=servlet",
			form:           url.Values{},
			wantStatusCode: http.StatusOK,
			wantContains:   []string{"Welcome java"},
		},
		{
			name:           "query string wins over conflicting body",
			query:          "?login=java&pwd=servlet",
			form:           url.Values{"login": {"x"}, "pwd": {"y"}},
			wantStatusCode: http.StatusOK,
			wantContains:   []string{"Welcome java"},
		},
		{
			name:           "wrong password renders message then form",
			form:           url.Values{"login": {"java"}, "pwd": {"wrong"}},
			wantStatusCode: http.StatusOK,
			wantPrefix:     "<p><h1>Incorrect Login id/Password </h1></p>\n",
			wantContains:   []string{`action="/CallServlet"`},
		},
		{
			name:           "empty values render message then form",
			form:           url.Values{"login": {""}, "pwd": {""}},
			wantStatusCode: http.StatusOK,
			wantPrefix:     "<p><h1>Incorrect Login id/Password </h1></p>\n",
		},
		{
			name:           "absent login is a client error",
			form:           url.Values{"pwd": {"servlet"}},
			wantStatusCode: http.StatusBadRequest,
			wantContains:   []string{"missing parameter: login"},
		},
	}

	app := newTestApp(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postFormQuery(t, app.Handler(), tt.query, tt.form.Encode())

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			}
			if tt.wantPrefix != "" {
				assert.True(t, strings.HasPrefix(rr.Body.String(), tt.wantPrefix), rr.Body.String())
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, rr.Body.String(), want)
			}
		})
	}
}

func TestApp_ConfiguredCredentials(t *testing.T) {
	app := newTestApp(t, func(cfg *config.ServiceConfig) {
		cfg.Gate.Login = "admin"
		cfg.Gate.Password = "hunter2"
	})

	rr := postForm(t, app.Handler(), "login=admin&pwd=hunter2")
	assert.Contains(t, rr.Body.String(), "Welcome admin")

	rr = postForm(t, app.Handler(), "login=java&pwd=servlet")
	assert.True(t, strings.HasPrefix(rr.Body.String(), "<p><h1>Incorrect Login id/Password </h1></p>"))
}

func TestApp_StaticRoutes(t *testing.T) {
	app := newTestApp(t, nil)

	for _, path := range []string{"/", "/1.html"} {
		rr := httptest.NewRecorder()
		app.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Body.String(), `name="pwd"`, path)
	}

	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/FwdDemo", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestApp_LoginFormServedAndIncluded(t *testing.T) {
	app := newTestApp(t, nil)

	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/1.html", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	form := rr.Body.String()

	failed := postForm(t, app.Handler(), "login=java&pwd=nope")
	assert.Equal(t, "<p><h1>Incorrect Login id/Password </h1></p>\n"+form, failed.Body.String())
}

func TestApp_Metrics(t *testing.T) {
	app := newTestApp(t, nil)
	postForm(t, app.Handler(), "login=java&pwd=servlet")
	postForm(t, app.Handler(), "login=java&pwd=nope")

	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "dispatcher_gate_requests_total 2")
	assert.Contains(t, body, `dispatcher_gate_outcomes_total{outcome="forward"} 1`)
	assert.Contains(t, body, `dispatcher_gate_outcomes_total{outcome="include"} 1`)
	assert.Contains(t, body, "dispatcher_gate_duration_seconds_count 2")
}

func TestNewAppFromConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.ServiceConfig)
	}{
		{name: "missing port", mutate: func(c *config.ServiceConfig) { c.Port = "" }},
		{name: "missing login", mutate: func(c *config.ServiceConfig) { c.Gate.Login = "" }},
		{name: "negative timeout", mutate: func(c *config.ServiceConfig) { c.Server.ReadTimeout = -time.Second }},
		{
			name: "forward and include share a name",
			mutate: func(c *config.ServiceConfig) {
				c.Gate.ForwardTarget = "/1.html"
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.ReadLocalConfig(configPath)
			require.NoError(t, err)
			tt.mutate(cfg)

			_, err = NewAppFromConfig(cfg, zerolog.NewZerologLoggerWithWriter("test", io.Discard))
			assert.Error(t, err)
		})
	}
}

func TestNewApp_EnvOverrides(t *testing.T) {
	t.Setenv("DISPATCHER_PORT", "0")
	t.Setenv("DISPATCHER_GATE_FAILURE_MESSAGE", "Try again")

	app, err := NewApp(configPath)
	require.NoError(t, err)
	assert.Equal(t, "0", app.Config.Port)

	rr := postForm(t, app.Handler(), "login=x&pwd=y")
	assert.True(t, strings.HasPrefix(rr.Body.String(), "<p><h1>Try again </h1></p>"))
}

func TestApp_Run(t *testing.T) {
	app := newTestApp(t, func(cfg *config.ServiceConfig) {
		cfg.Host = "127.0.0.1"
		cfg.Server.ShutdownTimeout = time.Second
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}
