// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/contacts")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("MAIL_ENABLED", "false")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Address())
	assert.Equal(t, 23*time.Hour, cfg.JWT.AccessTokenExpire)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, AvatarDriverLocal, cfg.Avatar.Driver)
	assert.Equal(t, 250, cfg.Avatar.Size)
	assert.Equal(t, "smtp.ukr.net", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BASE_URL", "https://contacts.example.com/")
	t.Setenv("PORT", "8080")
	t.Setenv("MAIL_ENABLED", "true")
	t.Setenv("USER_EMAIL", "robot@example.com")
	t.Setenv("META_PASSWORD", "mailpass")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://contacts.example.com", cfg.App.BaseURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "robot@example.com", cfg.Mail.Username)
	assert.Equal(t, "robot@example.com", cfg.Mail.Sender())
	assert.Equal(t, "mailpass", cfg.Mail.Password)
}

func TestLoadYAMLFile(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  environment: production
server:
  port: 9000
avatar:
  size: 128
log:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 128, cfg.Avatar.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	setRequiredEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"SECRET_KEY": ""}},
		{"missing database", map[string]string{"DATABASE_URL": ""}},
		{"mail without credentials", map[string]string{"MAIL_ENABLED": "true"}},
		{"s3 without bucket", map[string]string{"AVATAR_DRIVER": "s3"}},
		{"unknown avatar driver", map[string]string{"AVATAR_DRIVER": "ftp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestS3DriverWithBucket(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AVATAR_DRIVER", "s3")
	t.Setenv("AVATAR_S3_BUCKET", "avatars")
	t.Setenv("AVATAR_S3_ENDPOINT", "http://localhost:9000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "avatars", cfg.Avatar.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.Avatar.S3.Region)
}
