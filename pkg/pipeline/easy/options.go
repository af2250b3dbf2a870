package easy

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options resolves option values for a pipeline build. Lookup precedence is
// explicit values first, then environment variables carrying the prefix,
// then the defaults supplied at construction.
type Options struct {
	envPrefix string
	items     map[string]string
}

// NewOptions creates an option set. Defaults are folded in at construction:
// a default loses to an environment variable of the same name and both lose
// to an explicit value. envPrefix, when not empty, is prepended to every
// environment lookup with an underscore.
func NewOptions(values, defaults map[string]string, envPrefix string) *Options {
	opts := &Options{
		items: make(map[string]string, len(values)+len(defaults)),
	}

	if envPrefix != "" {
		opts.envPrefix = envPrefix + "_"
	}

	for key, value := range values {
		opts.items[key] = value
	}

	for key, value := range defaults {
		if _, ok := opts.items[key]; !ok {
			opts.items[key] = opts.getenv(key, value)
		}
	}

	return opts
}

func (o *Options) getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(o.envPrefix + key); ok {
		return value
	}

	return fallback
}

// Get returns the value for key and whether one is known. Keys absent from
// the stored values are still looked up in the environment, so options can
// be passed without being declared anywhere.
func (o *Options) Get(key string) (string, bool) {
	if value, ok := o.items[key]; ok {
		return value, true
	}

	if value, ok := os.LookupEnv(o.envPrefix + key); ok {
		return value, true
	}

	return "", false
}

// Set stores an explicit value, overriding environment and defaults.
func (o *Options) Set(key, value string) {
	o.items[key] = value
}

// Has reports whether a value is known for key.
func (o *Options) Has(key string) bool {
	_, ok := o.Get(key)

	return ok
}

// Missing returns the subset of keys that have no value, in the order given.
func (o *Options) Missing(keys ...string) []string {
	var missing []string

	for _, key := range keys {
		if !o.Has(key) {
			missing = append(missing, key)
		}
	}

	return missing
}

// LoadConfigFile reads a YAML file of flat key/value option defaults.
func LoadConfigFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", path)
	}

	values := make(map[string]string)

	err = yaml.Unmarshal(raw, &values)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse config file %s", path)
	}

	return values, nil
}
