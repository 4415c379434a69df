package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"leadform/pkg/config"
)

type Config struct {
	DB     config.DBConfig     `yaml:"db"`
	JWT    config.JWTConfig    `yaml:"jwt"`
	Server config.ServerConfig `yaml:"server"`
	SMTP   config.SMTPConfig   `yaml:"smtp"`
	Admin  config.AdminConfig  `yaml:"admin"`
}

func Load() *Config {
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var cfg Config
	cfgData, err := yaml.Marshal(cfgMap)
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	// Environment variables win over file values.
	config.OverrideDBFromEnv(&cfg.DB)
	config.OverrideJWTFromEnv(&cfg.JWT)
	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideSMTPFromEnv(&cfg.SMTP)
	config.OverrideAdminFromEnv(&cfg.Admin)

	if cfg.Server.Port == "" {
		cfg.Server.Port = "5000"
	}

	return &cfg
}
