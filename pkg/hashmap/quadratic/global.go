package quadratic

import (
	"errors"
	"log"

	"github.com/scottcagno/qpmap/pkg/hash/hashfn"
)

const (
	MaxLoadFactor  = 0.50 // must not exceed 50% for quadratic probing to always find a bucket
	DefaultMapSize = 11
)

var (
	ErrCapacityTooSmall = errors.New("quadratic: capacity is smaller than the number of entries")
	errProbeExhausted   = errors.New("quadratic: probe sequence exhausted")
)

var defaultConfig = &Config{
	InitialCapacity: DefaultMapSize,
	HashFunc:        hashfn.Default,
}

// Config holds the options for creating a HashMap
type Config struct {
	InitialCapacity uint            // promoted to the next prime
	HashFunc        hashfn.HashFunc // key hash function
	Logger          *log.Logger     // optional, logs every rebuild
}

func checkConfig(conf *Config) *Config {
	if conf == nil {
		return defaultConfig
	}
	if conf.InitialCapacity == 0 {
		conf.InitialCapacity = DefaultMapSize
	}
	if conf.HashFunc == nil {
		conf.HashFunc = hashfn.Default
	}
	return conf
}
