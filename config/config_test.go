package config_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/txtai/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironment(t *testing.T) {
	t.Setenv(config.EnvURL, "http://txtai:8000")
	t.Setenv(config.EnvToken, "secret")

	cfg := config.FromEnvironment()

	assert.Equal(t, "http://txtai:8000", cfg.URL)
	assert.Equal(t, "secret", cfg.Token)
}

func TestFromEnvironmentUnset(t *testing.T) {
	t.Setenv(config.EnvURL, "")
	t.Setenv(config.EnvToken, "")

	cfg := config.FromEnvironment()

	assert.Empty(t, cfg.URL)
	assert.Empty(t, cfg.Token)
}

func TestParse(t *testing.T) {
	t.Setenv("TXTAI_TEST_TOKEN", "from-env")

	data := []byte(`
url: ${TXTAI_TEST_URL:-http://localhost:8000}
token: ${TXTAI_TEST_TOKEN}

limits:
  rate: 2.5
  burst: 5

tracing: true
metrics: true
`)

	cfg, err := config.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.URL)
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 5, cfg.Burst)
	assert.True(t, cfg.Tracing)
	assert.True(t, cfg.Metrics)
}

func TestParseMinimal(t *testing.T) {
	cfg, err := config.Parse([]byte("url: https://txtai.example.com\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://txtai.example.com", cfg.URL)
	assert.Empty(t, cfg.Token)
	assert.Zero(t, cfg.RateLimit)
	assert.False(t, cfg.Tracing)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "negative rate",
			input: "limits:\n  rate: -1\n",
		},
		{
			name:  "negative burst",
			input: "limits:\n  burst: -1\n",
		},
		{
			name:  "url without scheme",
			input: "url: localhost:8000\n",
		},
		{
			name:  "malformed yaml",
			input: "url: [unterminated\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txtai.yaml")

	require.NoError(t, os.WriteFile(path, []byte("url: http://localhost:8000\ntoken: abc\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.URL)
	assert.Equal(t, "abc", cfg.Token)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestClient(t *testing.T) {
	var header string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		w.Write([]byte("3"))
	}))

	t.Cleanup(srv.Close)

	cfg := &config.Config{
		URL:   srv.URL,
		Token: "abc",

		RateLimit: 100,
	}

	c, err := cfg.Client()
	require.NoError(t, err)

	count, err := c.Embeddings.Count(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.Equal(t, "Bearer abc", header)
}

func TestClientWithoutToken(t *testing.T) {
	var header []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Values("Authorization")
		w.Write([]byte("0"))
	}))

	t.Cleanup(srv.Close)

	cfg := &config.Config{URL: srv.URL}

	c, err := cfg.Client()
	require.NoError(t, err)

	_, err = c.Embeddings.Count(context.Background())
	require.NoError(t, err)

	assert.Empty(t, header)
}

func TestOptionsMetricsRegisterTwice(t *testing.T) {
	cfg := &config.Config{URL: "http://localhost:8000", Metrics: true}

	_, err := cfg.Options()
	require.NoError(t, err)

	_, err = cfg.Options()
	require.NoError(t, err)
}
