package pack

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// ErrNegativeMaxLen is returned by LoadConfig when max_len is negative
var ErrNegativeMaxLen = errors.New("max_len must not be negative")

// Config contains the limits a pack enforces on
// each of its buckets. A zero limit is no limit.
type Config struct {
	// MaxSize is the largest total size of a bucket
	MaxSize uint64 `yaml:"max_size"`
	// MaxLen is the largest number of entries in a bucket
	MaxLen int `yaml:"max_len"`
	// Logger defaults to zap.L()
	Logger *zap.Logger `yaml:"-"`
}

// LoadConfig reads bucket limits from YAML:
//
//	max_size: 4096
//	max_len: 100
//
// Unknown fields are rejected. An empty document yields
// a config without limits.
func LoadConfig(r io.Reader) (Config, error) {
	var config Config

	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)

	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("could not decode pack config: %s", err)
	}

	if config.MaxLen < 0 {
		return Config{}, ErrNegativeMaxLen
	}

	return config, nil
}
