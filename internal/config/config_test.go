package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "ortobahn.toml")

	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	viper.Reset()
	viper.SetConfigFile(configFile)
	err = viper.ReadInConfig()
	require.NoError(t, err)
}

func TestConfig_Load_ValidBasicConfig(t *testing.T) {
	writeConfigFile(t, `[server]
port = 9090
data_dir = "/tmp/ortobahn-test"

[admin]
username = "admin"
password = "password123"

[session]
secret = "super-secret"

[backups]
max_backups = 5
schedule = "30 2 * * *"

[stripe]
webhook_secret = "whsec_testing"
`)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/ortobahn-test", cfg.Server.DataDir)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "password123", cfg.Admin.Password)
	assert.Equal(t, "super-secret", cfg.Session.Secret)
	assert.Equal(t, 5, cfg.Backups.MaxBackups)
	assert.Equal(t, "30 2 * * *", cfg.Backups.Schedule)
	assert.Equal(t, "whsec_testing", cfg.Stripe.WebhookSecret)

	// backups.dir defaults inside the data dir
	assert.Equal(t, filepath.Join("/tmp/ortobahn-test", "backups"), cfg.Backups.Dir)
	assert.Equal(t, filepath.Join("/tmp/ortobahn-test", "db", "ortobahn.db"), cfg.DBPath())
}

func TestConfig_Load_AppliesDefaults(t *testing.T) {
	writeConfigFile(t, `[admin]
username = "admin"
password = "password123"

[stripe]
webhook_secret = "whsec_testing"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultMaxBackups, cfg.Backups.MaxBackups)
	assert.Equal(t, DefaultBackupSchedule, cfg.Backups.Schedule)
	assert.NotEmpty(t, cfg.Server.DataDir)
	assert.NotEmpty(t, cfg.Backups.Dir)
}

func TestConfig_Load_RejectsNonPositiveMaxBackups(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"zero", 0},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfigFile(t, `[admin]
username = "admin"
password = "password123"

[backups]
max_backups = `+strconv.Itoa(tt.value)+`
`)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "backups.max_backups")
		})
	}
}

func TestConfig_Load_RequiresAdminCredentials(t *testing.T) {
	writeConfigFile(t, `[admin]
username = "admin"
`)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin.username and admin.password")
}

func TestConfig_Load_RequiresWebhookSecret(t *testing.T) {
	writeConfigFile(t, `[admin]
username = "admin"
password = "password123"
`)

	// An unset secret must refuse to start rather than accept forged
	// webhook signatures.
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stripe.webhook_secret")

	t.Setenv("ORTOBAHN_STRIPE_WEBHOOK_SECRET", "whsec_from_env")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "whsec_from_env", cfg.Stripe.WebhookSecret)
}

func TestConfig_Load_EnvOverridesSessionSecret(t *testing.T) {
	writeConfigFile(t, `[admin]
username = "admin"
password = "password123"

[session]
secret = "from-file"

[stripe]
webhook_secret = "whsec_testing"
`)

	t.Setenv("ORTOBAHN_SESSION_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Session.Secret)
}
