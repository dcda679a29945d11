package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// fileKeys are the flags a YAML config file may default. Explicitly-set
// flags win over the file; the file wins over built-in defaults.
var fileKeys = []string{
	"count", "length", "pattern", "groupsize", "sep", "alphabet",
	"allow-ambiguous", "no-unique", "out", "format", "preview",
}

func applyFileConfig(fs *flag.FlagSet, path string) error {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cdkeygen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// the implicit ./cdkeygen.yaml is optional
		if path == "" {
			var nf viper.ConfigFileNotFoundError
			if errors.As(err, &nf) || errors.Is(err, os.ErrNotExist) {
				return nil
			}
		}
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for _, name := range fileKeys {
		if set[name] || !v.IsSet(name) {
			continue
		}
		if err := fs.Set(name, v.GetString(name)); err != nil {
			return fmt.Errorf("key %q: %w", name, err)
		}
	}
	return nil
}
