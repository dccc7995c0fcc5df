package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EternisAI/signup-portal/internal/api/http"
	"github.com/EternisAI/signup-portal/internal/registration"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log          LogConfig
	Http         http.Config
	Registration registration.Config
}

var config Config

func InitConfig() {
	_ = godotenv.Load()

	viper.SetConfigName("application")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./cmd/signup-portal")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log.level", LOG_LEVEL_INFO)
	viper.SetDefault("http.port", 3000)
	viper.SetDefault("registration.endpoint_url", registration.DefaultEndpointURL)
	_ = viper.BindEnv("registration.endpoint_url", "REGISTRATION_ENDPOINT_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		panic(err)
	}

	initLogger(config.Log.Level)

	if strings.ToUpper(config.Log.Level) == LOG_LEVEL_DEBUG {
		configJSON, err := json.MarshalIndent(config, "", "  ")
		if err == nil {
			fmt.Println("Config loaded:")
			fmt.Println(string(configJSON))
		}
	}
}
