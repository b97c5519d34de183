package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/askmilo/askmilo-cli/config"
	"github.com/askmilo/askmilo-cli/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		config.EnvBackendURL,
		config.EnvLegacyBackendURL,
		config.EnvUploadURL,
		config.EnvSubject,
		config.EnvTimeout,
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultBackendURL, cfg.APIHost())
	assert.Equal(t, config.DefaultBackendURL+"/upload", cfg.UploadEndpoint())

	s, err := cfg.DefaultSubject()
	require.NoError(t, err)
	assert.Equal(t, subject.CN, s)

	d, err := cfg.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTimeout, d)
}

func TestAPIHostTrimsTrailingSlash(t *testing.T) {
	cfg := &config.Config{BackendURL: "https://milo.example.com/"}
	assert.Equal(t, "https://milo.example.com", cfg.APIHost())
	assert.Equal(t, "https://milo.example.com/upload", cfg.UploadEndpoint())

	cfg.UploadURL = "http://localhost:8000/upload"
	assert.Equal(t, "http://localhost:8000/upload", cfg.UploadEndpoint())
}

func TestApplyEnv(t *testing.T) {
	t.Run("OverridesFileValues", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvBackendURL, "https://env.example.com")
		t.Setenv(config.EnvUploadURL, "https://upload.example.com/upload")
		t.Setenv(config.EnvSubject, "os")
		t.Setenv(config.EnvTimeout, "5s")

		cfg := &config.Config{BackendURL: "http://file.example.com", Subject: "DBMS"}
		cfg.ApplyEnv()
		require.NoError(t, cfg.Validate())

		assert.Equal(t, "https://env.example.com", cfg.APIHost())
		assert.Equal(t, "https://upload.example.com/upload", cfg.UploadEndpoint())
		s, err := cfg.DefaultSubject()
		require.NoError(t, err)
		assert.Equal(t, subject.OS, s)
		d, err := cfg.RequestTimeout()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, d)
	})
	t.Run("FallsBackToLegacyBackendVariable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvLegacyBackendURL, "http://legacy.example.com")

		cfg := &config.Config{}
		cfg.ApplyEnv()
		assert.Equal(t, "http://legacy.example.com", cfg.APIHost())
	})
	t.Run("EmptyEnvKeepsFileValues", func(t *testing.T) {
		clearEnv(t)
		cfg := &config.Config{BackendURL: "http://file.example.com"}
		cfg.ApplyEnv()
		assert.Equal(t, "http://file.example.com", cfg.APIHost())
	})
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		cfg  config.Config
	}{
		{name: "bad scheme", cfg: config.Config{BackendURL: "ftp://example.com"}},
		{name: "missing host", cfg: config.Config{BackendURL: "http://"}},
		{name: "bad upload url", cfg: config.Config{UploadURL: "localhost:8000/upload"}},
		{name: "unknown subject", cfg: config.Config{Subject: "MATH"}},
		{name: "bad timeout", cfg: config.Config{Timeout: "soon"}},
		{name: "negative timeout", cfg: config.Config{Timeout: "-1s"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.DefaultConfigFileName)

	cfg := &config.Config{BackendURL: "https://milo.example.com", Subject: "OS", Timeout: "30s"}
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPath(t *testing.T) {
	t.Run("MissingFileIsEmptyConfig", func(t *testing.T) {
		cfg, err := config.LoadFromPath(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})
	t.Run("CorruptFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.DefaultConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := config.LoadFromPath(path)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
