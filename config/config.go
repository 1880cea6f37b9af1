package config

import (
	"fmt"
	"io"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config 运行期配置，只来自环境变量。棋盘大小、Tick 间隔和配色是常量，不在此处
type Config struct {
	LogFile  string `env:"SNAKE_LOG_FILE" env-default:"snake.log" env-description:"path of the rolling log file"`
	LogLevel string `env:"SNAKE_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Seed     uint64 `env:"SNAKE_SEED" env-default:"0" env-description:"food RNG seed, 0 seeds from the clock"`
}

// Load 读取环境变量
func Load() (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return conf, nil
}

// MustLoad 读取失败直接 panic，供入口使用
func MustLoad() *Config {
	conf, err := Load()
	if err != nil {
		panic(err)
	}
	return conf
}

// Usage 输出环境变量说明
func Usage(w io.Writer, header string) func() {
	return cleanenv.FUsage(w, &Config{}, &header)
}
