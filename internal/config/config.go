package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Supported gateway transports
const (
	TransportHTTP      = "http"
	TransportWebsocket = "websocket"
)

// GatewayConfig represents the config needed to reach the remote device
type GatewayConfig struct {
	Transport string        `yaml:"transport" mapstructure:"transport"`
	URL       string        `yaml:"url" mapstructure:"url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// APIConfig represents the config for the read-only http api
type APIConfig struct {
	Listen string `yaml:"listen" mapstructure:"listen"`
}

// HistoryConfig represents the config for recording discovered devices
type HistoryConfig struct {
	Disabled bool `yaml:"disabled" mapstructure:"disabled"`
	Retain   int  `yaml:"retain" mapstructure:"retain"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	PollInterval time.Duration `yaml:"poll-interval" mapstructure:"poll-interval"`
	Gateway      GatewayConfig `yaml:"gateway" mapstructure:"gateway"`
	API          APIConfig     `yaml:"api" mapstructure:"api"`
	History      HistoryConfig `yaml:"history" mapstructure:"history"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		PollInterval: time.Second * 15,
		Gateway: GatewayConfig{
			Transport: TransportHTTP,
			URL:       "http://192.168.240.1/api/netmon",
			Timeout:   time.Second * 10,
		},
		API: APIConfig{
			Listen: "127.0.0.1:7777",
		},
		History: HistoryConfig{
			Disabled: false,
			Retain:   20,
		},
	}
}

// Load returns the unmarshaled user provided config at confPath. Fields
// missing from the file are filled in from Default.
func Load(confPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(confPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	conf := Config{}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return nil, err
	}

	// mergo treats an explicit zero as unset, zero retain keeps everything
	if v.IsSet("history.retain") {
		conf.History.Retain = v.GetInt("history.retain")
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

// LoadOrDefault loads the config at confPath falling back to Default when
// the file does not exist
func LoadOrDefault(confPath string) (*Config, error) {
	conf, err := Load(confPath)

	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return conf, err
}

// Validate returns an error if the config cannot be used
func (c Config) Validate() error {
	if c.PollInterval <= 0 {
		return errors.New("poll-interval must be greater than zero")
	}

	switch c.Gateway.Transport {
	case TransportHTTP, TransportWebsocket:
	default:
		return fmt.Errorf("unsupported gateway transport: %q", c.Gateway.Transport)
	}

	if c.Gateway.URL == "" {
		return errors.New("gateway url cannot be empty")
	}

	if c.History.Retain < 0 {
		return errors.New("history retain cannot be negative")
	}

	return nil
}

// Write writes the config as yaml to confPath
func Write(conf Config, confPath string) error {
	file, err := os.Create(confPath)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	if err := encoder.Encode(conf); err != nil {
		return err
	}

	return encoder.Close()
}
