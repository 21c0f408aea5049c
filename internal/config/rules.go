package config

// RulesConfig holds the optional rule variations.
type RulesConfig struct {
	// StrictCastling forbids castling out of, through or into check.
	StrictCastling bool

	// ExtendedInsufficientMaterial treats K+B vs K, K+N vs K and same-colour
	// bishops as dead positions as well as bare kings.
	ExtendedInsufficientMaterial bool
}

// NewRulesConfig creates a RulesConfig with default values.
// Both variations are off by default.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
