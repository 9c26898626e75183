package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// executeCommand runs the root command with args and returns everything it printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	verbose = false
	noConfig = false
	backendOverride = ""
	questionsJSON = false
	runPlain = false
	runAnswers = ""
	historyLimit = 20
	logger.SetVerbose(false)
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "vibeyf", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"run", "questions", "health", "history", "settings", "mcp", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "no-config", "backend"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestSetServices_NilClears(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetServices(nil)

	assert.Nil(t, runner)
	assert.Nil(t, questionnaireService)
	assert.Nil(t, healthService)
	assert.Nil(t, historyService)
	assert.Nil(t, settingsService)
	assert.Nil(t, runnerFactory)
	assert.Empty(t, logPath)
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version, "empty version is ignored")
}

func TestFactory_ReceivesGlobalFlags(t *testing.T) {
	var got Options
	SetFactory(func(opts Options) (*Services, func(), error) {
		got = opts
		return &Services{Health: &MockHealthService{}}, nil, nil
	})
	defer func() {
		SetFactory(nil)
		SetServices(nil)
	}()

	_, err := executeCommand(t, "health", "--no-config", "--backend", "http://scores:9000", "-v")

	require.NoError(t, err)
	assert.Equal(t, Options{NoConfig: true, BackendURL: "http://scores:9000"}, got)
	assert.True(t, logger.IsVerbose())
}

func TestFactory_Error(t *testing.T) {
	SetFactory(func(Options) (*Services, func(), error) {
		return nil, nil, errors.New("disk full")
	})
	defer SetFactory(nil)

	_, err := executeCommand(t, "questions")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialise")
	assert.Contains(t, err.Error(), "disk full")
}

func TestFactory_SkippedForVersion(t *testing.T) {
	called := false
	SetFactory(func(Options) (*Services, func(), error) {
		called = true
		return &Services{}, nil, nil
	})
	defer SetFactory(nil)

	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.False(t, called)
	assert.Contains(t, out, "vibeyf version")
}

func TestExecute_RunsCleanup(t *testing.T) {
	closed := 0
	SetFactory(func(Options) (*Services, func(), error) {
		return &Services{Health: &MockHealthService{}}, func() { closed++ }, nil
	})
	defer func() {
		SetFactory(nil)
		SetServices(nil)
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"health"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}()

	err := Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	assert.Nil(t, cleanup)
}
