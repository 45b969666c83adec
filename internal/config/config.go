package config

import "github.com/spf13/viper"

// Config holds all configuration for the application, loaded from app.env
// or the environment. The two API keys are optional; when one is missing the
// matching capability reports itself unconfigured and the cascade skips it.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	DBSource         string `mapstructure:"DB_SOURCE"`
	AnthropicAPIKey  string `mapstructure:"ANTHROPIC_API_KEY"`
	AnthropicModel   string `mapstructure:"ANTHROPIC_MODEL"`
	GoogleMapsAPIKey string `mapstructure:"GOOGLE_MAPS_API_KEY"`
	SuggestCacheSize int    `mapstructure:"SUGGEST_CACHE_SIZE"`
}

// LoadConfig reads configuration from app.env in the given path, with
// environment variables taking precedence.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
