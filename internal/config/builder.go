package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithStrictCastling enables the full castling rule.
func (b *ConfigBuilder) WithStrictCastling(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictCastling = enabled
	return b
}

// WithExtendedInsufficientMaterial enables the K+minor piece draw rules.
func (b *ConfigBuilder) WithExtendedInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Rules.ExtendedInsufficientMaterial = enabled
	return b
}

// WithMoveLogDir sets the move log directory.
func (b *ConfigBuilder) WithMoveLogDir(dir string) *ConfigBuilder {
	b.cfg.MoveLog.Dir = dir
	return b
}

// WithoutMoveLog disables the move log.
func (b *ConfigBuilder) WithoutMoveLog() *ConfigBuilder {
	b.cfg.MoveLog.Disabled = true
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostic writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
