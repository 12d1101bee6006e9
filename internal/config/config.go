package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Migration MigrationConfig `mapstructure:"migration"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	PublicURL       string `mapstructure:"public_url"`    // Base URL objects are served from, e.g. a CDN
	AvatarPrefix    string `mapstructure:"avatar_prefix"` // Key prefix for user avatars
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// MigrationConfig controls myWOD backup imports.
type MigrationConfig struct {
	// Timeout bounds a whole import run. Records created before the
	// deadline are kept.
	Timeout     time.Duration `mapstructure:"timeout"`
	TempDir     string        `mapstructure:"temp_dir"` // Where uploaded backups are spooled; empty means os.TempDir()
	MaxUploadMB int64         `mapstructure:"max_upload_mb"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Nested keys map to env vars, e.g. jwt.expiration -> JWT_EXPIRATION
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "wodbook")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.avatar_prefix", "avatars")
	v.SetDefault("jwt.expiration", "24h")
	v.SetDefault("migration.timeout", "2m")
	v.SetDefault("migration.temp_dir", "")
	v.SetDefault("migration.max_upload_mb", 64)

	// Keys without a default are only picked up from the environment once bound.
	for _, key := range []string{"s3.endpoint", "s3.region", "s3.access_key_id", "s3.secret_access_key", "s3.bucket_name", "s3.public_url", "jwt.secret"} {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	err = v.ReadInConfig()
	// A missing config file is fine; defaults and env vars still apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	// Duration strings ("90s", "2m") decode straight into time.Duration fields.
	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
