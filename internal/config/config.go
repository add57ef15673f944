package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	HTTPPort string `yaml:"http-port" env-default:"9090"`
	Storage  string `yaml:"storage" env-default:"memory"`
	Redis    Redis  `yaml:"redis"`
	Bot      Bot    `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Bot struct {
	// Delay before the computer replies, so pollers render the human
	// move first.
	Delay             time.Duration `yaml:"delay" env-default:"300ms"`
	DefaultDifficulty string        `yaml:"default-difficulty" env-default:"medium"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// UseRedis reports whether the room registry lives in Redis instead of
// process memory.
func (that *Config) UseRedis() bool {
	return that.Storage == "redis"
}
