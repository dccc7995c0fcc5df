package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EternisAI/signup-portal/internal/api/http"
	"github.com/EternisAI/signup-portal/internal/auth"
	"github.com/EternisAI/signup-portal/internal/db"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log  LogConfig
	Http http.Config
	DB   db.Config
	JWT  auth.Config
}

var config Config

func InitConfig() {
	_ = godotenv.Load()

	viper.SetConfigName("application")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./cmd/signup-backend")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log.level", LOG_LEVEL_INFO)
	viper.SetDefault("http.port", 8080)
	viper.SetDefault("jwt.expiry", auth.DefaultExpiry)
	_ = viper.BindEnv("db.url", "DATABASE_URL")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := viper.Unmarshal(&config); err != nil {
		panic(err)
	}

	initLogger(config.Log.Level)

	if strings.ToUpper(config.Log.Level) == LOG_LEVEL_DEBUG {
		redacted := config
		redacted.DB.Url = "<redacted>"
		redacted.JWT.Secret = "<redacted>"
		configJSON, err := json.MarshalIndent(redacted, "", "  ")
		if err == nil {
			fmt.Println("Config loaded:")
			fmt.Println(string(configJSON))
		}
	}
}
