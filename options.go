package remotemem

import (
	"golang.org/x/exp/slog"
)

type blockConfig struct {
	logger    *slog.Logger
	translate ProtectionTranslator
	channel   PrivilegedChannel
}

// Option adjusts how a Block is constructed.
type Option func(cfg *blockConfig)

// WithLogger attaches a logger used for failures on paths that cannot
// return an error, such as the release performed by Close and Reset.
// Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *blockConfig) {
		cfg.logger = logger
	}
}

// WithTranslator replaces the protection translator applied before every
// allocate and protect call. Defaults to native.TranslateProtection.
func WithTranslator(translate ProtectionTranslator) Option {
	return func(cfg *blockConfig) {
		cfg.translate = translate
	}
}

// WithPhysicalBacking fixes the block to physical backing: protect and
// free are routed through channel with the accessor's process id instead
// of through the accessor itself. The backing cannot be changed after
// construction.
func WithPhysicalBacking(channel PrivilegedChannel) Option {
	return func(cfg *blockConfig) {
		cfg.channel = channel
	}
}
