package gameboy

import "github.com/gomeboy/core/pkg/log"

type config struct {
	logger log.Logger
}

func defaultConfig() *config {
	return &config{logger: log.NewNullLogger()}
}

// Option customizes a GameBoy at construction time.
type Option func(*config)

// WithLogger wires logger into every component that logs (cartridge
// detection, MMU's OAM-DMA trace, CPU's illegal-opcode reports).
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
