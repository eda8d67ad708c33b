package configuration

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	Uri      string `json:"uri"`
	Database string `json:"database"`
}

type ServerConfig struct {
	AppPort int `json:"app_port"`
}

type AuthConfig struct {
	JwtSecret string `json:"jwt_secret"`
}

type Config struct {
	Mongo  MongoConfig  `json:"mongo"`
	Server ServerConfig `json:"server"`
	Auth   AuthConfig   `json:"auth"`
}

// LoadConfig reads the JSON config file and applies environment overrides.
// A .env file, when present, is loaded first.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	err = json.Unmarshal(file, &config)
	if err != nil {
		return nil, err
	}

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		config.Mongo.Uri = uri
	}
	if database := os.Getenv("MONGO_DATABASE"); database != "" {
		config.Mongo.Database = database
	}
	if port := os.Getenv("APP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.AppPort = p
		}
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JwtSecret = secret
	}

	return &config, nil
}
