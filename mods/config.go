package mods

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
)

// tomlConfig represents the project configuration file as it is encoded in
// TOML: one DwiSlpy source file as the compilation unit, plus the knobs the
// CLI would otherwise need repeating on every invocation.
type tomlConfig struct {
	Project *tomlProject `toml:"project"`
}

type tomlProject struct {
	Name           string `toml:"name"`
	Entry          string `toml:"entry"`
	LogLevel       string `toml:"log-level,omitempty"`
	OutputPath     string `toml:"output,omitempty"`
	DwiSlpyVersion string `toml:"dwislpy-version,omitempty"`
}

// Config is the project configuration, resolved and validated from the TOML
// file (spec.md 6, "CLI surface" -- this is the external collaborator's own
// project file, not part of the core).
type Config struct {
	// Root is the directory containing the config file.
	Root string

	// EntryPath is the absolute path to the DwiSlpy source file to compile.
	EntryPath string

	// LogLevel is one of the report.LogLevel* constants.
	LogLevel int

	// OutputPath is where the translated IR listing (or, eventually, a
	// back-end's output) should be written. Empty means stdout.
	OutputPath string
}

var logLevelNames = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// Load reads and validates the project config file at dir/dwislpy-mod.toml.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, common.ModuleFileName)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tc := &tomlConfig{}
	if err := toml.Unmarshal(buf, tc); err != nil {
		return nil, fmt.Errorf("malformed project file: %w", err)
	}

	if tc.Project == nil {
		return nil, errors.New("project file is missing the [project] table")
	}
	if tc.Project.Entry == "" {
		return nil, errors.New("project file must specify an entry source file")
	}

	cfg := &Config{
		Root:       dir,
		EntryPath:  filepath.Join(dir, tc.Project.Entry),
		OutputPath: tc.Project.OutputPath,
		LogLevel:   report.LogLevelVerbose,
	}

	if tc.Project.LogLevel != "" {
		lvl, ok := logLevelNames[tc.Project.LogLevel]
		if !ok {
			return nil, fmt.Errorf("%q is not a recognized log level", tc.Project.LogLevel)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// Init creates a new project file at dir, pointing at entry.
func Init(dir, name, entry string) error {
	path := filepath.Join(dir, common.ModuleFileName)

	if _, err := os.Stat(path); err == nil {
		return errors.New("a project file already exists here")
	}

	tc := &tomlConfig{
		Project: &tomlProject{
			Name:           name,
			Entry:          entry,
			LogLevel:       "verbose",
			DwiSlpyVersion: common.DwiSlpyVersion,
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating project file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tc); err != nil {
		return fmt.Errorf("error encoding project file: %w", err)
	}

	return nil
}
