package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultMoveLogDir is where move logs are written unless configured otherwise.
const DefaultMoveLogDir = "games"

// MoveLogConfig holds settings for the per-game move log.
type MoveLogConfig struct {
	// Dir is the directory that receives one text file per game.
	Dir string

	// Disabled turns the move log off entirely.
	Disabled bool
}

// NewMoveLogConfig creates a MoveLogConfig with default values.
func NewMoveLogConfig() *MoveLogConfig {
	return &MoveLogConfig{
		Dir: DefaultMoveLogDir,
	}
}

// Validate checks that the move log configuration is valid.
func (m *MoveLogConfig) Validate() error {
	if !m.Disabled && m.Dir == "" {
		return fmt.Errorf("move log directory is empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
