// Package config provides configuration management for the octoctl CLI.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"octoctl/internal/configfile"
	"octoctl/internal/logging"
	"octoctl/internal/validate"
)

// ResolveAndValidateGlobalFlags applies the settings-file defaults under
// the CLI flags (flag beats file, file beats hardcoded default) and then
// validates all global configuration before any command runs.
func ResolveAndValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := applySettingsFile(); err != nil {
		return err
	}

	if err := ValidateURL(); err != nil {
		return err
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := ValidateLogLevel(); err != nil {
		return err
	}

	return ValidateTimeout()
}

// applySettingsFile fills unset global flags from the per-user settings
// file. A missing file is fine; a malformed one is reported so typos do
// not silently drop defaults.
func applySettingsFile() error {
	path, err := configfile.DefaultPath()
	if err != nil {
		// No resolvable config dir: flags are the only source
		logging.Debug("No user config directory: %v", err)
		return nil
	}

	cfg, err := configfile.Read(path)
	if err != nil {
		return err
	}

	Global.URL = configfile.Resolve(Global.URL, cfg.BaseURL, "")
	Global.APIKey = configfile.Resolve(Global.APIKey, cfg.APIKey, "")
	return nil
}

// ValidateURL validates the resolved printer URL and normalizes it.
func ValidateURL() error {
	if Global.URL == "" {
		return fmt.Errorf("no printer URL configured - pass --url or set baseurl in the settings file")
	}

	normalized, err := validate.BaseURL(Global.URL)
	if err != nil {
		logging.Error("Invalid printer URL '%s': %v", Global.URL, err)
		return fmt.Errorf("invalid printer URL - expected format: http://host:port (e.g. http://printer.local:5000)")
	}

	Global.URL = normalized
	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if !logging.IsValidLogLevel(Global.LogLevel) {
		logging.Error("Invalid log level '%s' - valid levels are: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
		return fmt.Errorf("invalid log level - valid: DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

// ValidateTimeout validates the --timeout flag
func ValidateTimeout() error {
	if err := validate.ValidateField(Global.Timeout, "required,min=1"); err != nil {
		logging.Error("Invalid timeout %d: %v", Global.Timeout, err)
		return fmt.Errorf("timeout must be at least 1 second")
	}
	return nil
}
