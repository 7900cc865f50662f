package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	Global = global{}
	Enforcement = enforcement{}
	AWS = awsConfig{}
	Service = service{}
}

func TestSetDefaults(t *testing.T) {
	reset()
	require.NoError(t, LoadFromFile(""))
	require.NoError(t, SetDefaults())

	assert.Equal(t, ModeLambda, Global.Mode)
	assert.Equal(t, 1, Global.Logging.Verbosity)
	assert.False(t, Enforcement.DryRun)
	assert.Equal(t, 3, AWS.MaxAttempts)
	assert.Equal(t, 3*time.Second, AWS.MaxBackoff)
	assert.Equal(t, "/", Service.Path)
	assert.Equal(t, "8080", Service.Port)
	assert.Equal(t, 5*time.Second, Service.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	t.Cleanup(reset)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
global:
  mode: service
  logging:
    verbosity: 2
  s3:
    upload:
      enabled: true
      bucketName: enforcement-reports
enforcement:
  dryRun: true
aws:
  maxAttempts: 5
service:
  port: "9090"
  timeout: 10s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, LoadFromFile(path))
	require.NoError(t, SetDefaults())

	assert.Equal(t, ModeService, Global.Mode)
	assert.Equal(t, 2, Global.Logging.Verbosity)
	assert.True(t, Global.S3.Upload.Enabled)
	assert.Equal(t, "enforcement-reports", Global.S3.Upload.BucketName)
	assert.True(t, Enforcement.DryRun)
	assert.Equal(t, 5, AWS.MaxAttempts)
	assert.Equal(t, 3*time.Second, AWS.MaxBackoff, "unset values fall back to defaults")
	assert.Equal(t, "9090", Service.Port)
	assert.Equal(t, 10*time.Second, Service.Timeout)
	assert.Equal(t, "/", Service.Path)
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		Name      string
		Path      string
		ExpectErr bool
	}{
		{
			Name: "missing_file",
			Path: filepath.Join(dir, "absent.yaml"),
		},
		{
			Name:      "directory",
			Path:      dir,
			ExpectErr: true,
		},
		{
			Name: "malformed",
			Path: func() string {
				p := filepath.Join(dir, "bad.yaml")
				_ = os.WriteFile(p, []byte("global: [unterminated"), 0o600)
				return p
			}(),
			ExpectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := LoadFromFile(tc.Path)
			if tc.ExpectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
