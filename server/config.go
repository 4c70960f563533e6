package server

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/foodhubco/foodbot/pkg/openai"
)

// Config is the chat server configuration.
type Config struct {
	// Address to listen on (e.g., ":3000")
	ListenAddr string

	// APIKey is the OpenAI credential, read once at process start. Empty
	// means the process runs in permanent fallback-only mode. Deliberately
	// not a config-file key so credentials stay out of checked-in files.
	APIKey string

	// BaseURL overrides the OpenAI API origin.
	BaseURL string

	// Model identifier sent with every completion request.
	Model string

	// GatewayTimeout bounds each outbound completion attempt.
	GatewayTimeout time.Duration

	// SystemPrompt overrides the built-in persona directive.
	SystemPrompt string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     ":3000",
		BaseURL:        openai.DefaultBaseURL,
		Model:          "gpt-4o-mini",
		GatewayTimeout: openai.DefaultTimeout,
	}
}

// fileConfig is the TOML shape of a config file. All keys are optional.
type fileConfig struct {
	Listen         string   `toml:"listen"`
	BaseURL        string   `toml:"base_url"`
	Model          string   `toml:"model"`
	GatewayTimeout duration `toml:"gateway_timeout"`
	SystemPrompt   string   `toml:"system_prompt"`
}

// duration lets TOML values like "5s" decode into a time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// LoadFile overlays values from a TOML config file onto c. Only keys present
// in the file are applied, so flags and defaults survive for the rest.
func (c *Config) LoadFile(path string) error {
	var file fileConfig
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}

	if meta.IsDefined("listen") {
		c.ListenAddr = file.Listen
	}
	if meta.IsDefined("base_url") {
		c.BaseURL = file.BaseURL
	}
	if meta.IsDefined("model") {
		c.Model = file.Model
	}
	if meta.IsDefined("gateway_timeout") {
		c.GatewayTimeout = file.GatewayTimeout.Duration
	}
	if meta.IsDefined("system_prompt") {
		c.SystemPrompt = file.SystemPrompt
	}

	return nil
}
