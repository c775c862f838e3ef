package config

import (
	"fmt"
	"sort"
	"strconv"
)

// ErrUnknownKey indicates a dotted key that maps to no config field.
var ErrUnknownKey = fmt.Errorf("%w: unknown key", ErrInvalidConfig)

// keyAccess couples the getter and setter for one dotted key.
type keyAccess struct {
	get func(*Config) string
	set func(*Config, string) error
}

//nolint:gochecknoglobals // Compile-time constant lookup table.
var keys = map[string]keyAccess{
	"calculation.system": {
		get: func(c *Config) string { return c.Calculation.System },
		set: func(c *Config, v string) error { c.Calculation.System = v; return nil },
	},
	"calculation.keep_spaces": {
		get: func(c *Config) string { return strconv.FormatBool(c.Calculation.KeepSpaces) },
		set: func(c *Config, v string) error { return setBool(&c.Calculation.KeepSpaces, v) },
	},
	"calculation.keep_diacritics": {
		get: func(c *Config) string { return strconv.FormatBool(c.Calculation.KeepDiacritics) },
		set: func(c *Config, v string) error { return setBool(&c.Calculation.KeepDiacritics, v) },
	},
	"history.file": {
		get: func(c *Config) string { return c.History.File },
		set: func(c *Config, v string) error { c.History.File = v; return nil },
	},
	"history.max_entries": {
		get: func(c *Config) string { return strconv.Itoa(c.History.MaxEntries) },
		set: func(c *Config, v string) error { return setInt(&c.History.MaxEntries, v) },
	},
	"history.disabled": {
		get: func(c *Config) string { return strconv.FormatBool(c.History.Disabled) },
		set: func(c *Config, v string) error { return setBool(&c.History.Disabled, v) },
	},
	"provider.base_url": {
		get: func(c *Config) string { return c.Provider.BaseURL },
		set: func(c *Config, v string) error { c.Provider.BaseURL = v; return nil },
	},
	"provider.timeout_seconds": {
		get: func(c *Config) string { return strconv.Itoa(c.Provider.TimeoutSeconds) },
		set: func(c *Config, v string) error { return setInt(&c.Provider.TimeoutSeconds, v) },
	},
	"provider.offline": {
		get: func(c *Config) string { return strconv.FormatBool(c.Provider.Offline) },
		set: func(c *Config, v string) error { return setBool(&c.Provider.Offline, v) },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = v; return nil },
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error { c.Logging.File = v; return nil },
	},
	"output.format": {
		get: func(c *Config) string { return c.Output.Format },
		set: func(c *Config, v string) error { c.Output.Format = v; return nil },
	},
}

// Get returns the string form of the value at a dotted key.
func (c *Config) Get(key string) (string, error) {
	access, ok := keys[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return access.get(c), nil
}

// Set assigns a dotted key from its string form, then re-validates the
// whole config so an invalid value never sticks.
func (c *Config) Set(key, value string) error {
	access, ok := keys[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	previous := access.get(c)
	if err := access.set(c, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		_ = access.set(c, previous)
		return err
	}
	return nil
}

// Keys returns all settable dotted keys in sorted order.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for key := range keys {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func setBool(target *bool, value string) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%w: want true or false, got %q", ErrInvalidConfig, value)
	}
	*target = parsed
	return nil
}

func setInt(target *int, value string) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: want an integer, got %q", ErrInvalidConfig, value)
	}
	*target = parsed
	return nil
}
