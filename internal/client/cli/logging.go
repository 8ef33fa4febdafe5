package cli

import "go.uber.org/zap"

// NewLogger builds the zap logger hpackctl's commands share. verbose
// switches between the development and production encoder presets.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
