package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iamcatalog/internal/arn"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "aws", settings.Partition)
	assert.Equal(t, "*", settings.Region)
	assert.Equal(t, "*", settings.Account)
	assert.Equal(t, "-", settings.Output)
	assert.Equal(t, "WARN", settings.LogLevel)
	assert.Equal(t, LogFormatJSON, settings.LogFormat)
	assert.Equal(t, arn.DefaultResolver(), settings.Resolver(""))
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iamcatalog.yaml")
	content := `
partition: aws-cn
region: cn-north-1
account: "123456789012"
catalog_dir: /etc/iamcatalog/services
output: s3://policies/team.json
log_level: debug
log_format: plain
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "aws-cn", settings.Partition)
	assert.Equal(t, "cn-north-1", settings.Region)
	assert.Equal(t, "123456789012", settings.Account)
	assert.Equal(t, "/etc/iamcatalog/services", settings.CatalogDir)
	assert.Equal(t, "s3://policies/team.json", settings.Output)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, LogFormatPlain, settings.LogFormat)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iamcatalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: eu-west-1\n"), 0o644))

	t.Setenv("IAMCATALOG_REGION", "us-east-2")
	t.Setenv("IAMCATALOG_ACCOUNT", "auto")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "us-east-2", settings.Region)
	assert.True(t, settings.NeedsAccountLookup())
	assert.Equal(t, "999999999999", settings.Resolver("999999999999").Account)
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "aws", settings.Partition)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("IAMCATALOG_REGION", "us:east")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("IAMCATALOG_LOG_LEVEL", "chatty")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("IAMCATALOG_LOG_FORMAT", "xml")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadWith_BoundFlagValue(t *testing.T) {
	v := viper.New()
	v.Set("output", "policy.json")

	settings, err := LoadWith(v, "")
	require.NoError(t, err)
	assert.Equal(t, "policy.json", settings.Output)
}

func TestResolver_AutoWithoutAccount(t *testing.T) {
	s := &Settings{Partition: "aws", Region: "", Account: "auto"}
	r := s.Resolver("")
	assert.Equal(t, "*", r.Account)
	assert.Equal(t, "*", r.Region)
}
