package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// jwt.secret 低于这个长度直接拒绝启动
const minSecretLen = 32

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Session  SessionConfig  `mapstructure:"session"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	// true 时产品/公司接口也挂 JWT 中间件，false 保持公开
	ProtectProducts bool `mapstructure:"protect_products"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret"`
}

// Load 读取配置文件并做启动期校验
func Load() (*Config, error) {
	viper.SetConfigName("config") // 配置文件名 (不带扩展名)
	viper.SetConfigType("yaml")   // 文件类型
	viper.AddConfigPath(".")      // 查找路径：根目录

	// 支持环境变量覆盖 (例如在 Docker 中)
	// 比如设置环境变量 STOCKROOM_JWT_SECRET 可以覆盖 yaml 里的值
	viper.SetEnvPrefix("STOCKROOM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 签名密钥是硬性要求，没有默认值可兜底
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < minSecretLen {
		return fmt.Errorf("jwt.secret 必须配置且长度不少于 %d 字节", minSecretLen)
	}
	if c.Session.Secret == "" {
		return errors.New("session.secret 必须配置")
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn 必须配置")
	}
	if c.Server.Port == "" {
		c.Server.Port = ":8080"
	}
	return nil
}
