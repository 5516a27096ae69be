package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default directory roots used when the config document omits them.
const (
	defaultInputDir  = "Process_List"
	defaultOutputDir = "Schedulers/template"
	outputPrefix     = "template_out_"
)

// Config is the run configuration document. It is normally JSON; since JSON
// is a subset of YAML it is decoded with the YAML decoder, so YAML works too.
// Unknown keys are ignored.
type Config struct {
	Dataset   string `yaml:"dataset"`    // subdirectory namespace for inputs and outputs (required)
	Policy    string `yaml:"policy"`     // default policy when --policy is not given
	InputDir  string `yaml:"input_dir"`  // root of process lists
	OutputDir string `yaml:"output_dir"` // root of trace outputs
}

// LoadConfig reads the configuration document at path and applies defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w: %s is empty", ErrConfig, path)
		}
		return Config{}, fmt.Errorf("%w: parsing %s: %v", ErrConfig, path, err)
	}
	if cfg.Dataset == "" {
		return Config{}, fmt.Errorf("%w: %s: dataset is required", ErrConfig, path)
	}
	if cfg.InputDir == "" {
		cfg.InputDir = defaultInputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	return cfg, nil
}

// InputPath locates a process list inside the dataset namespace.
func (c Config) InputPath(name string) string {
	return filepath.Join(c.InputDir, c.Dataset, name)
}

// OutputPath names the trace file for a process list. The suffix is the
// second "_"-separated part of the input name, e.g. "list_3.txt" → "template_out_3.txt";
// names without "_" are used whole.
func (c Config) OutputPath(name string) string {
	base := filepath.Base(name)
	suffix := base
	if parts := strings.Split(base, "_"); len(parts) > 1 {
		suffix = parts[1]
	}
	return filepath.Join(c.OutputDir, c.Dataset, outputPrefix+suffix)
}
