package nexus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name   string `yaml:"name" env:"NEXUS_TEST_NAME" env-default:"directory" validate:"required"`
	Port   int    `yaml:"port" env:"NEXUS_TEST_PORT" env-default:"8080" validate:"min=1"`
	Nested struct {
		Password string `yaml:"password" env:"NEXUS_TEST_PASSWORD"`
	} `yaml:"nested"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Environment(t *testing.T) {
	t.Setenv("NEXUS_TEST_NAME", "from-env")

	cfg := &testConfig{}
	err := NewLoader(WithOnlyEnvironment()).Load(cfg)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoader_InvalidType(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment()).Load(testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeInvalidType, cfgErr.Code)
}

func TestLoader_ValidationFailure(t *testing.T) {
	t.Setenv("NEXUS_TEST_PORT", "0")

	err := NewLoader(WithOnlyEnvironment()).Load(&testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeValidation, cfgErr.Code)
	assert.NotNil(t, errors.Unwrap(cfgErr))
}

func TestLoader_SecurityCheckInspectsNestedStructs(t *testing.T) {
	t.Setenv("NEXUS_TEST_PASSWORD", "changeme")

	err := NewLoader(WithOnlyEnvironment()).Load(&testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeSecurityCheck, cfgErr.Code)
	assert.Contains(t, cfgErr.Error(), "Nested.Password")

	err = NewLoader(WithOnlyEnvironment(), WithSecurityChecker(nil)).Load(&testConfig{})
	assert.NoError(t, err)
}

func TestLoader_FileMergedOverEnvironment(t *testing.T) {
	path := writeFile(t, "config.yml", "name: from-file\nport: 9090\n")

	cfg := &testConfig{}
	err := NewLoader(WithFileName(path)).Load(cfg)

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoader_MissingFile(t *testing.T) {
	err := NewLoader(WithFileName(filepath.Join(t.TempDir(), "missing.yml"))).Load(&testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeFileNotFound, cfgErr.Code)
}

type stubValidator struct{ err error }

func (s stubValidator) Validate(_ context.Context, _ interface{}) error { return s.err }

func TestLoader_CustomValidator(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment(), WithValidator(stubValidator{err: errors.New("nope")})).Load(&testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeValidation, cfgErr.Code)
	assert.EqualError(t, cfgErr, "[CONFIG_VALIDATION_FAILED] configuration validation failed: nope")
}
