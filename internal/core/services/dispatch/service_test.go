package dispatch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AntonioJCosta/stocker/internal/core/commands"
	"github.com/AntonioJCosta/stocker/internal/core/domain/catalog"
	"github.com/AntonioJCosta/stocker/internal/core/domain/drug"
	"github.com/AntonioJCosta/stocker/internal/core/domain/vendor"
	"github.com/AntonioJCosta/stocker/internal/core/testutil"
	"github.com/AntonioJCosta/stocker/internal/repositories/cart"
	"github.com/AntonioJCosta/stocker/internal/repositories/inventory"
	"github.com/AntonioJCosta/stocker/internal/repositories/vendors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service   *Service
	parser    *testutil.MockParser
	storage   *testutil.MockDrugStorage
	inventory *inventory.Inventory
	vendors   *vendors.Directory
	log       *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		parser:    &testutil.MockParser{},
		storage:   testutil.NewMockDrugStorage(),
		inventory: inventory.NewInventory(),
		vendors:   vendors.NewDirectory(),
		log:       &bytes.Buffer{},
	}
	env := commands.Env{
		Inventory: f.inventory,
		Cart:      cart.NewCart(),
		Vendors:   f.vendors,
		Storage:   f.storage,
		DataFile:  "drugs.txt",
	}
	f.service = NewService(f.parser, env, zerolog.New(f.log))
	return f
}

func TestNewService(t *testing.T) {
	t.Run("should panic if parser is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil parser")
			}
		}()
		_ = NewService(nil, commands.Env{}, zerolog.Nop())
	})

	t.Run("should panic if a store is missing", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with empty env")
			}
		}()
		_ = NewService(&testutil.MockParser{}, commands.Env{}, zerolog.Nop())
	})

	t.Run("should assign a session id", func(t *testing.T) {
		f := newFixture(t)
		assert.Len(t, f.service.SessionID(), 36)
	})
}

func TestService_Dispatch(t *testing.T) {
	saveErr := errors.New("disk full")

	tests := []struct {
		name        string
		command     commands.Command
		wantResult  commands.Result
		wantErr     error
		wantOutcome string
		wantLevel   string
	}{
		{
			name: "successful command",
			command: &testutil.MockCommand{
				WordValue: "list",
				ExecuteFunc: func(commands.Env) (commands.Result, error) {
					return commands.NewResult("Listed all drugs."), nil
				},
			},
			wantResult:  commands.NewResult("Listed all drugs."),
			wantOutcome: `"outcome":"ok"`,
			wantLevel:   `"level":"info"`,
		},
		{
			name:        "rejected input",
			command:     commands.IncorrectCommand{Attempted: "bogus", Message: "Invalid command format!"},
			wantResult:  commands.NewResult("Invalid command format!"),
			wantOutcome: `"outcome":"rejected"`,
			wantLevel:   `"level":"warn"`,
		},
		{
			name: "persistence failure",
			command: &testutil.MockCommand{
				WordValue: "save",
				ExecuteFunc: func(commands.Env) (commands.Result, error) {
					return commands.Result{}, saveErr
				},
			},
			wantErr:     saveErr,
			wantOutcome: `"outcome":"failed"`,
			wantLevel:   `"level":"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.parser.ParseFunc = func(string) commands.Command { return tt.command }

			cmd, result, err := f.service.Dispatch("some line")

			assert.Equal(t, tt.command, cmd)
			assert.Equal(t, tt.wantResult, result)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []string{"some line"}, f.parser.ParseCalls)

			logged := f.log.String()
			assert.Contains(t, logged, tt.wantOutcome)
			assert.Contains(t, logged, tt.wantLevel)
			assert.Contains(t, logged, `"session":"`+f.service.SessionID()+`"`)
		})
	}
}

func TestService_DispatchPassesEnv(t *testing.T) {
	f := newFixture(t)
	mock := &testutil.MockCommand{
		WordValue: "add",
		ExecuteFunc: func(env commands.Env) (commands.Result, error) {
			return commands.NewResult(""), env.Inventory.Add(drug.Drug{Name: "Aspirin", SerialNumber: "SN1", Quantity: 3})
		},
	}
	f.parser.ParseFunc = func(string) commands.Command { return mock }

	_, _, err := f.service.Dispatch("add ...")

	require.NoError(t, err)
	assert.Equal(t, 1, mock.ExecuteCalls)
	assert.Equal(t, int64(3), f.inventory.StockOf("aspirin"))
}

func TestService_Load(t *testing.T) {
	t.Run("replaces the inventory", func(t *testing.T) {
		f := newFixture(t)
		stored := []drug.Drug{
			{Name: "Aspirin", ExpiryDate: "2025-01-01", SerialNumber: "SN1", Quantity: 10},
			{Name: "Panadol", ExpiryDate: "2026-01-01", SerialNumber: "SN2", Quantity: 4},
		}
		f.storage.LoadFunc = func(path string) ([]drug.Drug, error) {
			assert.Equal(t, "drugs.txt", path)
			return stored, nil
		}

		n, err := f.service.Load()

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, stored, f.inventory.All())
	})

	t.Run("wraps storage errors", func(t *testing.T) {
		f := newFixture(t)
		f.storage.LoadFunc = func(string) ([]drug.Drug, error) {
			return nil, drug.ErrMalformedLine
		}

		_, err := f.service.Load()

		assert.ErrorIs(t, err, drug.ErrMalformedLine)
		assert.True(t, strings.Contains(err.Error(), "drugs.txt"))
	})
}

func TestService_ApplyCatalog(t *testing.T) {
	t.Run("seeds every store", func(t *testing.T) {
		f := newFixture(t)
		provider := &testutil.MockCatalogProvider{
			GetCatalogFunc: func() (catalog.Catalog, error) {
				return catalog.Catalog{
					Vendors:      []vendor.Vendor{{Name: "Pfizer", Supplies: []string{"Aspirin"}}},
					Thresholds:   []drug.Threshold{{Name: "Aspirin", Quantity: 5}},
					Descriptions: []drug.Description{{Name: "Aspirin", Text: "Pain relief"}},
				}, nil
			},
		}

		err := f.service.ApplyCatalog(provider, f.inventory, f.vendors)

		require.NoError(t, err)
		assert.True(t, f.vendors.Exists("pfizer"))
		threshold, ok := f.inventory.ThresholdOf("Aspirin")
		assert.True(t, ok)
		assert.Equal(t, int64(5), threshold)
		text, ok := f.inventory.Description("Aspirin")
		assert.True(t, ok)
		assert.Equal(t, "Pain relief", text)
	})

	t.Run("nil provider is a no-op", func(t *testing.T) {
		f := newFixture(t)
		assert.NoError(t, f.service.ApplyCatalog(nil, f.inventory))
	})

	t.Run("wraps provider errors", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("bad yaml")
		provider := &testutil.MockCatalogProvider{
			GetCatalogFunc: func() (catalog.Catalog, error) { return catalog.Catalog{}, boom },
		}
		assert.ErrorIs(t, f.service.ApplyCatalog(provider, f.inventory), boom)
	})
}
