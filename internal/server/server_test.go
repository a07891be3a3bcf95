package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/escola-be/internal/config"
	"github.com/hongminglow/escola-be/internal/http/respond"
	"github.com/hongminglow/escola-be/internal/middleware"
	"github.com/hongminglow/escola-be/internal/session"
	"github.com/hongminglow/escola-be/internal/storage/memory"
)

func testConfig() config.Config {
	return config.Config{
		Port:          "0",
		SessionSecret: "test-secret",
		SessionIssuer: "escola-be",
		CORSOrigins:   []string{"*"},
	}
}

func newTestServer(t *testing.T, cfg config.Config) (*httptest.Server, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ts := httptest.NewServer(New(cfg, store, session.NewMemoryStore()).Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, payload any) (int, respond.Envelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env respond.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRegisterLoginAndProtectedPage(t *testing.T) {
	ts, store := newTestServer(t, testConfig())
	client := newClient(t)

	user := map[string]any{
		"name":           "João Silva",
		"email":          "joao@example.com",
		"identityNumber": "111",
		"password":       "minhaSenha",
		"phone":          "11988887777",
		"postalCode":     "12345-678",
		"street":         "Rua das Flores",
		"district":       "Centro",
		"city":           "Campinas",
		"state":          "SP",
		"image":          "joao.png",
		"userTypeRef":    2,
	}

	status, env := postJSON(t, client, ts.URL+"/cadastro", user)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, env.Message, "cadastrado com sucesso")

	status, env = postJSON(t, client, ts.URL+"/cadastro", user)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Message, "já cadastrado")
	assert.Equal(t, 1, store.UserCount())

	status, _ = get(t, client, ts.URL+"/cadastro-turma")
	require.Equal(t, http.StatusUnauthorized, status)

	status, env = postJSON(t, client, ts.URL+"/login", map[string]string{
		"identityNumber": "111",
		"password":       "minhaSenha",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, env.Message)

	status, body := get(t, client, ts.URL+"/cadastro-turma")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Cadastro de turmas")

	status, body = get(t, client, ts.URL+"/aluno")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Área do aluno")

	status, body = get(t, newClient(t), ts.URL+"/cadastro-turma")
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, middleware.AccessDeniedMessage)

	stored, err := store.FindUserByIdentityNumber(t.Context(), "111")
	require.NoError(t, err)
	assert.Equal(t, "12345678", stored.PostalCode)
	assert.NotEqual(t, "minhaSenha", stored.PasswordHash)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ts, _ := newTestServer(t, testConfig())
	client := newClient(t)

	status, _ := postJSON(t, client, ts.URL+"/cadastro", map[string]any{"identityNumber": "222", "password": "certa"})
	require.Equal(t, http.StatusOK, status)

	wrongStatus, wrongEnv := postJSON(t, client, ts.URL+"/login", map[string]string{"identityNumber": "222", "password": "errada"})
	unknownStatus, unknownEnv := postJSON(t, client, ts.URL+"/login", map[string]string{"identityNumber": "999", "password": "certa"})

	assert.Equal(t, http.StatusBadRequest, wrongStatus)
	assert.Equal(t, wrongStatus, unknownStatus)
	assert.Equal(t, wrongEnv, unknownEnv)

	status, _ = get(t, client, ts.URL+"/aluno")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestPublicPages(t *testing.T) {
	ts, _ := newTestServer(t, testConfig())
	client := newClient(t)

	for path, marker := range map[string]string{
		"/":                     "Portal Escolar",
		"/login":                "Entrar",
		"/cadastro":             "Cadastro de usuários",
		"/static/css/style.css": "font-family",
	} {
		status, body := get(t, client, ts.URL+path)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Contains(t, body, marker, path)
	}

	status, _ := get(t, client, ts.URL+"/does-not-exist")
	assert.Equal(t, http.StatusNotFound, status)

	for _, dir := range []string{"/static/", "/static/css/", "/static/js/"} {
		status, body := get(t, client, ts.URL+dir)
		assert.Equal(t, http.StatusNotFound, status, dir)
		assert.NotContains(t, body, "style.css", dir)
	}
}

func TestClassRegistrationOpenByDefault(t *testing.T) {
	ts, _ := newTestServer(t, testConfig())

	status, env := postJSON(t, newClient(t), ts.URL+"/cadastro-turma", map[string]string{"code": "T1", "description": "Turma 1"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Turma cadastrada com sucesso!", env.Message)
}

func TestClassRegistrationGuarded(t *testing.T) {
	cfg := testConfig()
	cfg.ProtectClassRegistration = true
	ts, _ := newTestServer(t, cfg)
	client := newClient(t)

	resp, err := client.Post(ts.URL+"/cadastro-turma", "application/json", bytes.NewReader([]byte(`{"code":"T1"}`)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	status, _ := postJSON(t, client, ts.URL+"/cadastro", map[string]any{"identityNumber": "333", "password": "pw"})
	require.Equal(t, http.StatusOK, status)
	status, _ = postJSON(t, client, ts.URL+"/login", map[string]string{"identityNumber": "333", "password": "pw"})
	require.Equal(t, http.StatusOK, status)

	status, _ = postJSON(t, client, ts.URL+"/cadastro-turma", map[string]string{"code": "T1"})
	assert.Equal(t, http.StatusOK, status)
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, testConfig())

	status, env := func() (int, respond.Envelope) {
		resp, err := http.Get(ts.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		var env respond.Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		return resp.StatusCode, env
	}()
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", env.Message)
}
