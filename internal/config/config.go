package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"` // 关闭时使用内存存储（开发/测试环境）
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// EngineConfig 对话引擎配置
type EngineConfig struct {
	HistoryLimit    int `yaml:"historyLimit"`    // 个性化参考的最近对话轮数
	SuggestionLimit int `yaml:"suggestionLimit"` // 每次回复附带的建议数量上限
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig 加载配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.Engine.HistoryLimit <= 0 {
		cfg.Engine.HistoryLimit = 5
	}
	if cfg.Engine.SuggestionLimit <= 0 {
		cfg.Engine.SuggestionLimit = 3
	}

	return &cfg, nil
}
