package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	ReportsFolder string      `mapstructure:"reports_folder"`
	ResultsFolder string      `mapstructure:"results_folder"`
	GroundTruth   string      `mapstructure:"ground_truth"`
	PromptVersion string      `mapstructure:"prompt_version"`
	Provider      string      `mapstructure:"provider"`
	Format        string      `mapstructure:"format"`
	Output        string      `mapstructure:"output"`
	Model         ModelConfig `mapstructure:"model"`
}

type ModelConfig struct {
	Name           string  `mapstructure:"name"`
	BaseURL        string  `mapstructure:"base_url"`
	MockResponse   string  `mapstructure:"mock_response"`
	Temperature    float64 `mapstructure:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".radeval")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
