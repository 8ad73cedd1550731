package trie

import "fmt"

// Config configures a trie.
type Config struct {
	// Capacity is the number of nodes to pre-allocate. Zero lets the arena
	// grow on demand.
	Capacity int
}

func (cfg Config) normalized() Config {
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
