// console/config/config_test.go
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/aptmgr/console/config"
)

// inTempDir runs the test from an empty directory so no config file or .env
// from the source tree is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestInitConfig_Defaults(t *testing.T) {
	inTempDir(t)

	require.NoError(t, config.InitConfig())

	cfg := config.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "8090", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:8090", cfg.Server.Addr())
	assert.Equal(t, 2, config.GetInt("api.retries"))
	assert.Equal(t, time.Second, config.GetDuration("api.retryDelay"))
	assert.Equal(t, 5*time.Minute, config.GetDuration("cache.listTTL"))
	assert.Equal(t, 15*time.Minute, config.GetDuration("cache.detailTTL"))
	assert.Equal(t, 3*time.Minute, config.GetDuration("cache.statsTTL"))
	assert.Equal(t, 30*time.Second, config.GetDuration("polling.interval"))
	assert.False(t, config.GetBool("jobs.enabled"))
	assert.Equal(t, "console-activity", config.GetString("audit.index"))
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	inTempDir(t)
	t.Setenv("API_BASEURL", "https://apt.example.com/api")
	t.Setenv("JOBS_ENABLED", "true")
	t.Setenv("SERVER_HOST", "0.0.0.0")

	require.NoError(t, config.InitConfig())
	assert.Equal(t, "0.0.0.0:8090", config.GetConfig().Server.Addr())

	assert.Equal(t, "https://apt.example.com/api", config.GetString("api.baseURL"))
	assert.True(t, config.GetBool("jobs.enabled"))
}

func TestInitConfig_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9191\nREDIS_ENABLED=false\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("REDIS_ENABLED")
	})

	require.NoError(t, config.InitConfig())

	assert.Equal(t, "9191", config.GetString("server.port"))
	assert.False(t, config.GetBool("redis.enabled"))
}
