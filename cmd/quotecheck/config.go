package main

import (
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	Config      string `mapstructure:"config"`
	Iterations  int    `mapstructure:"iterations"`
	Seed        int64  `mapstructure:"seed"`
	Ops         string `mapstructure:"ops"`
	Workers     int    `mapstructure:"workers"`
	Oracle      string `mapstructure:"oracle"`
	MaxFailures int    `mapstructure:"max-failures"`
	Dump        bool   `mapstructure:"dump"`
	Verbose     bool   `mapstructure:"verbose"`
}

// loadConfig reads flags from args. Any key can also come from a
// QUOTECHECK_* environment variable (dashes become underscores) or from the
// file named by --config. Flags set on the command line win.
func loadConfig(args []string) (config, error) {
	fs := pflag.NewFlagSet("quotecheck", pflag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, toml or json)")
	fs.Int("iterations", 100000, "iterations per op")
	fs.Int64("seed", 0, "RNG seed (0 == current nanotime)")
	fs.String("ops", "", "comma separated ops to check (default all)")
	fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	fs.String("oracle", "apd", "reference implementation: apd or decimal")
	fs.Int("max-failures", 20, "stop after this many failures (0 == never)")
	fs.Bool("dump", false, "dump every failure with spew")
	fs.BoolP("verbose", "v", false, "log worker progress")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("QUOTECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return config{}, err
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
