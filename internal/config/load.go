package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by benchreport.
const (
	KeyBaseline = "baseline"
	KeyVerbose  = "verbose"
	KeyNoColor  = "no_color"
	KeyLogFile  = "log_file"
)

// DefaultBaseline is the configuration the comparison is made against.
const DefaultBaseline = "fatjar"

// Load initializes the configuration from an optional .env file, a YAML
// config file and BENCHREPORT_* environment variables. A missing config
// file is only an error when cfgFile was given explicitly.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("benchreport")
	}

	viper.SetEnvPrefix("BENCHREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyBaseline, DefaultBaseline)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyNoColor, false)
	viper.SetDefault(KeyLogFile, "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	return nil
}
