// Package config holds the interpreter's on-disk configuration: the
// prompt, the policies for empty and comment lines, and where the
// event log lives.
package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
)

// Line policies for empty and comment input lines.
const (
	PolicyIgnore = "ignore"
	PolicyExit   = "exit"
)

// Color output modes.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs afero.Fs

	// Prompt is printed before every input line.
	Prompt string `json:"prompt" validate:"required"`

	// OnEmptyLine and OnCommentLine decide whether an empty line or a
	// line starting with '#' ends the interpreter or is skipped.
	OnEmptyLine   string `json:"on_empty_line" validate:"oneof=ignore exit"`
	OnCommentLine string `json:"on_comment_line" validate:"oneof=ignore exit"`

	// Color controls coloring of diagnostics and failure reports.
	Color string `json:"color" validate:"oneof=always auto never"`

	// LogFile names the JSON-lines event log relative to the
	// configuration directory; empty disables event logging.
	LogFile string `json:"log_file"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewMemMapFs()
	}
	return c.configFs
}

// OpenEventLog opens the event log in an append-only state, or returns
// (nil, nil) when event logging is disabled.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.LogFile == "" {
		return nil, nil
	}
	return c.fs().OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.LogFile, os.O_RDONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration backed by an in-memory
// filesystem.
func Default() *Configuration {
	return defaultConfig()
}
