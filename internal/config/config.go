package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

const DefaultActivityFeedLimit = 50

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port              int      `yaml:"port"`
	LogLevel          string   `yaml:"log_level"`
	LogJSON           bool     `yaml:"log_json"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
	ActivityFeedLimit int      `yaml:"activity_feed_limit"` // feed is truncated to this many events
	MaxThreadLen      int      `yaml:"max_thread_len"`      // max thread text length in runes
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.ActivityFeedLimit <= 0 {
		c.Public.ActivityFeedLimit = DefaultActivityFeedLimit
	}
	if c.Public.MaxThreadLen <= 0 {
		c.Public.MaxThreadLen = 4096
	}
	if c.Public.Port == 0 {
		c.Public.Port = 8080
	}
}
