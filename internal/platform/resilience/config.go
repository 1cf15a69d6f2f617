package resilience

import "time"

// StateChangeFunc observes breaker transitions. It runs after the breaker lock is released.
type StateChangeFunc func(name string, from, to CircuitState)

// BreakerConfig shapes one named breaker. Zero values fall back to DefaultBreakerConfig.
type BreakerConfig struct {
	Name             string
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenProbes   int
	OnStateChange    StateChangeFunc
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "default",
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenProbes:   2,
	}
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	defaults := DefaultBreakerConfig()
	if c.Name == "" {
		c.Name = defaults.Name
	}
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenProbes < 1 {
		c.HalfOpenProbes = defaults.HalfOpenProbes
	}
	return c
}
