/*
Package dispatch runs raw input lines through the parser and executes the
resulting commands against the shared stores.
*/
package dispatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/AntonioJCosta/stocker/internal/core/commands"
	"github.com/AntonioJCosta/stocker/internal/core/domain/catalog"
	"github.com/AntonioJCosta/stocker/internal/core/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Parser turns one raw line into a command. It never fails; bad input yields
// an IncorrectCommand.
type Parser interface {
	Parse(raw string) commands.Command
}

// Seeder is a store that accepts predefined catalog entries.
type Seeder interface {
	Seed(c catalog.Catalog)
}

// Service serializes parse and execute over the stores held in its Env.
type Service struct {
	mu      sync.Mutex
	parser  Parser
	env     commands.Env
	logger  zerolog.Logger
	session string
}

// NewService creates a dispatch service.
// It panics if the parser or any store in env is nil.
func NewService(parser Parser, env commands.Env, logger zerolog.Logger) *Service {
	if parser == nil {
		panic("parser cannot be nil")
	}
	if env.Inventory == nil || env.Cart == nil || env.Vendors == nil || env.Storage == nil {
		panic("env stores cannot be nil")
	}
	session := uuid.NewString()
	return &Service{
		parser:  parser,
		env:     env,
		logger:  logger.With().Str("session", session).Logger(),
		session: session,
	}
}

// SessionID identifies this run in the log.
func (s *Service) SessionID() string {
	return s.session
}

// Dispatch parses line and executes the command. The command is returned so
// the caller can check commands.IsExit. The error is non-nil only when the
// command failed to persist.
func (s *Service) Dispatch(line string) (commands.Command, commands.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	cmd := s.parser.Parse(line)
	result, err := cmd.Execute(s.env)

	var event *zerolog.Event
	switch _, rejected := cmd.(commands.IncorrectCommand); {
	case rejected:
		event = s.logger.Warn().Str("outcome", "rejected")
	case err != nil:
		event = s.logger.Error().Err(err).Str("outcome", "failed")
	default:
		event = s.logger.Info().Str("outcome", "ok")
	}
	event.
		Str("word", cmd.Word()).
		Bool("listing", result.HasDrugs()).
		Dur("duration", time.Since(start)).
		Msg("command executed")

	return cmd, result, err
}

// Load replaces the inventory with the records stored in the data file.
// A missing data file leaves an empty inventory.
func (s *Service) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.env.DataFile == "" {
		return 0, nil
	}
	drugs, err := s.env.Storage.Load(s.env.DataFile)
	if err != nil {
		return 0, fmt.Errorf("failed to load drugs from '%s': %w", s.env.DataFile, err)
	}
	s.env.Inventory.Replace(drugs)
	s.logger.Info().Str("file", s.env.DataFile).Int("drugs", len(drugs)).Msg("inventory loaded")
	return len(drugs), nil
}

// ApplyCatalog reads the predefined catalog from provider and hands it to
// every seeder. Seeding runs after Load so thresholds and descriptions sit
// next to the loaded records.
func (s *Service) ApplyCatalog(provider ports.CatalogProvider, seeders ...Seeder) error {
	if provider == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := provider.GetCatalog()
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	if c.IsEmpty() {
		return nil
	}
	for _, seeder := range seeders {
		seeder.Seed(c)
	}
	s.logger.Info().
		Int("vendors", len(c.Vendors)).
		Int("thresholds", len(c.Thresholds)).
		Int("descriptions", len(c.Descriptions)).
		Msg("catalog applied")
	return nil
}
