package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.True(t, strings.Contains(output, "v1.0.0"))
	assert.True(t, strings.Contains(output, "abcd1234"))
	assert.True(t, strings.Contains(output, "2026-08-29"))
}

func TestParseConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parseConfig("does-not-exist.env")
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, 2592000, cfg.jwtExpSecond)
	assert.Empty(t, cfg.kafkaAddr)
	assert.Empty(t, cfg.s3Bucket)
}

func TestParseConfig_Overrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("JWT_EXP_SECOND", "3600")
	t.Setenv("KAFKA_ADDR", "localhost:9092")

	cfg, err := parseConfig("does-not-exist.env")
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.appPort)
	assert.Equal(t, 15432, cfg.pgPort)
	assert.Equal(t, 3600, cfg.jwtExpSecond)
	assert.Equal(t, "localhost:9092", cfg.kafkaAddr)
}

func TestParseConfig_BadInt(t *testing.T) {
	os.Clearenv()
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := parseConfig("does-not-exist.env")
	assert.Error(t, err)
}
