package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, PolicyIgnore, cfg.OnEmptyLine)
	assert.Equal(t, PolicyIgnore, cfg.OnCommentLine)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Configuration)
		field  string
	}{
		{"bad empty line policy", func(c *Configuration) { c.OnEmptyLine = "sometimes" }, "on_empty_line"},
		{"bad comment policy", func(c *Configuration) { c.OnCommentLine = "maybe" }, "on_comment_line"},
		{"bad color mode", func(c *Configuration) { c.Color = "rainbow" }, "color"},
		{"missing prompt", func(c *Configuration) { c.Prompt = "" }, "prompt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.field)
			}
		})
	}
}

func TestOpenEventLogDisabled(t *testing.T) {
	cfg := Default()
	cfg.LogFile = ""

	fd, err := cfg.OpenEventLog()
	assert.Nil(t, err)
	assert.Nil(t, fd)
}
