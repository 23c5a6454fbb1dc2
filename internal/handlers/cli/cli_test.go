package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/AntonioJCosta/stocker/internal/adapters/commandparser"
	"github.com/AntonioJCosta/stocker/internal/config"
	"github.com/AntonioJCosta/stocker/internal/core/commands"
	"github.com/AntonioJCosta/stocker/internal/core/services/dispatch"
	"github.com/AntonioJCosta/stocker/internal/core/testutil"
	"github.com/AntonioJCosta/stocker/internal/repositories/cart"
	"github.com/AntonioJCosta/stocker/internal/repositories/inventory"
	"github.com/AntonioJCosta/stocker/internal/repositories/vendors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

// isolate keeps config lookup away from the developer's own files.
func isolate(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func newTestRoot(storage *testutil.MockDrugStorage, seen **config.Config) Bootstrap {
	return func(cfg *config.Config) (Dispatcher, error) {
		if seen != nil {
			*seen = cfg
		}
		env := commands.Env{
			Inventory: inventory.NewInventory(),
			Cart:      cart.NewCart(),
			Vendors:   vendors.NewDirectory(),
			Storage:   storage,
			DataFile:  cfg.DataFile,
		}
		return dispatch.NewService(commandparser.NewParser(), env, zerolog.Nop()), nil
	}
}

func execute(t *testing.T, bootstrap Bootstrap, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test", commandparser.NewParser().Words(), bootstrap)
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestShell_RunsUntilExit(t *testing.T) {
	isolate(t)
	input := strings.Join([]string{
		"add /n Aspirin /d 2025-01-01 /s SN123 /q 10",
		"bogus",
		"exit",
		"list",
	}, "\n")

	out, err := execute(t, newTestRoot(testutil.NewMockDrugStorage(), nil), input, "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "New drug added in the inventory")
	assert.Contains(t, out, "Invalid command format!")
	assert.Contains(t, out, commands.MessageExit)
	assert.NotContains(t, out, commands.MessageListSuccess, "lines after exit must not run")
}

func TestShell_IsDefaultAndStopsAtEOF(t *testing.T) {
	isolate(t)

	out, err := execute(t, newTestRoot(testutil.NewMockDrugStorage(), nil), "list\n")

	require.NoError(t, err)
	assert.Contains(t, out, welcome)
	assert.Contains(t, out, commands.MessageInventoryEmpty)
}

func TestShell_ReportsSaveFailureAndContinues(t *testing.T) {
	isolate(t)
	storage := testutil.NewMockDrugStorage()
	storage.WriteFileFunc = func(string, string) error { return errors.New("disk full") }

	out, err := execute(t, newTestRoot(storage, nil), "save\nhelp\nexit\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, commands.HelpUsage)
}

func TestExec(t *testing.T) {
	isolate(t)
	storage := testutil.NewMockDrugStorage()

	out, err := execute(t, newTestRoot(storage, nil), "", "exec", "save")

	require.NoError(t, err)
	assert.Contains(t, out, commands.MessageSaveSuccess)
	assert.Contains(t, storage.Files, "drugs.txt")
}

func TestExec_ReturnsPersistenceErrors(t *testing.T) {
	isolate(t)
	storage := testutil.NewMockDrugStorage()
	storage.WriteFileFunc = func(string, string) error { return errors.New("read-only") }

	_, err := execute(t, newTestRoot(storage, nil), "", "exec", "save")

	assert.ErrorContains(t, err, "read-only")
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	isolate(t)
	var seen *config.Config

	_, err := execute(t, newTestRoot(testutil.NewMockDrugStorage(), &seen), "",
		"--data-file", "stock.txt", "--log-level", "debug", "exec", "list")

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "stock.txt", seen.DataFile)
	assert.Equal(t, "debug", seen.Log.Level)
	assert.False(t, seen.UI.Color)
}

func TestRoot_BootstrapError(t *testing.T) {
	isolate(t)
	failing := func(*config.Config) (Dispatcher, error) { return nil, errors.New("cannot load") }

	_, err := execute(t, failing, "", "exec", "list")

	assert.ErrorContains(t, err, "cannot load")
}

func TestCompleteWords(t *testing.T) {
	complete := completeWords(commandparser.NewParser().Words())

	got, directive := complete(nil, nil, "addV")
	assert.Equal(t, []string{"addVendor", "addVendorSupply"}, got)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	got, _ = complete(nil, nil, "")
	assert.Len(t, got, 23)
	assert.Equal(t, "add", got[0])

	got, _ = complete(nil, []string{"add"}, "/")
	assert.Empty(t, got)
}

func TestExec_CompletionListsCommandWords(t *testing.T) {
	isolate(t)

	out, err := execute(t, newTestRoot(testutil.NewMockDrugStorage(), nil), "", cobra.ShellCompRequestCmd, "exec", "check")

	require.NoError(t, err)
	assert.Contains(t, out, "checkOut\n")
	assert.NotContains(t, out, "viewCart")
}
