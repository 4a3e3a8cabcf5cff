package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

const (
	// PYXRGEN_CFG is the default config file name.
	PYXRGEN_CFG = "pyxrgen.cfg"
	// PYXRGEN_DUMP is the default type dump file name.
	PYXRGEN_DUMP = "pyxrgen.types.json"
)

// Config is the pyxrgen.cfg content.
type Config struct {
	Name         string   `json:"name"`
	TrimPrefixes []string `json:"trimPrefixes"`
}

func NewDefault() *Config {
	return &Config{
		Name:         "xr",
		TrimPrefixes: []string{"Xr"},
	}
}

// GetConfFromPath reads a pyxrgen.cfg. Fields absent from the file keep
// their defaults.
func GetConfFromPath(filePath string) (*Config, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	conf := NewDefault()
	err = json.Unmarshal(bytes, conf)
	if err != nil {
		return nil, err
	}
	return conf, nil
}

// ReadDumpFile reads the type dump written by the clang-side tool. An
// empty name means the default dump file; "-" reads stdin.
func ReadDumpFile(dumpFile string) ([]byte, error) {
	if dumpFile == "" {
		dumpFile = PYXRGEN_DUMP
	}
	_, file := filepath.Split(dumpFile)
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(dumpFile)
	}
	return data, err
}
