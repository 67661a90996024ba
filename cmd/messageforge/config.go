package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. They are also the names of the flags.
const (
	keyOutput   = "output"
	keyTags     = "tags"
	keyTests    = "tests"
	keyColor    = "color"
	keyVerbose  = "verbose"
	keyJSONLogs = "json-logs"
)

const (
	envPrefix  = "MESSAGEFORGE"
	configName = "messageforge"
)

// options are the resolved settings of a run.
type options struct {
	Output   string
	Tags     string
	Tests    bool
	Color    string
	Verbose  int
	JSONLogs bool
}

// loadOptions resolves the options from flags, environment variables, and
// the config file in precedence order. If configFile is empty,
// messageforge.yaml in dir is read if present.
func loadOptions(flags *pflag.FlagSet, dir, configFile string) (options, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyOutput, "messageforge_gen.go")
	v.SetDefault(keyColor, "auto")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return options{}, errors.Wrap(err, "failed to read config")
		}
	}

	for _, key := range []string{keyOutput, keyTags, keyTests, keyColor, keyVerbose, keyJSONLogs} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return options{}, errors.Wrapf(err, "failed to bind flag %s", key)
			}
		}
	}

	opts := options{
		Output:   v.GetString(keyOutput),
		Tags:     v.GetString(keyTags),
		Tests:    v.GetBool(keyTests),
		Color:    v.GetString(keyColor),
		Verbose:  v.GetInt(keyVerbose),
		JSONLogs: v.GetBool(keyJSONLogs),
	}
	if opts.Output == "" {
		return options{}, errors.WithHint(errors.New("empty output file name"), "set --output or remove the empty value from the config")
	}
	return opts, nil
}

// colorEnabled resolves the color mode.
func (o options) colorEnabled() (bool, error) {
	switch o.Color {
	case "auto":
		return isatty(), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, errors.WithHint(errors.Newf("invalid color mode %q", o.Color), "use one of auto, always, never")
}
