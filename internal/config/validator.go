package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if strings.TrimSpace(viper.GetString(KeyBaseline)) == "" {
		errors = append(errors, "baseline must not be empty")
	}

	// The log file itself may not exist yet, its directory must.
	if logFile := viper.GetString(KeyLogFile); logFile != "" {
		dir := filepath.Dir(logFile)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			errors = append(errors, fmt.Sprintf("log_file directory does not exist: %s", dir))
		}
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}
