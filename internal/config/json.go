package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/classhub/internal/flagx"
	"github.com/dmitrijs2005/classhub/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for the rate-limit window, which allows parsing
// both string values such as "30s" and integer nanoseconds. After
// unmarshalling, set fields are copied into the runtime Config.
type JsonConfig struct {
	StoreDriver          string         `json:"store_driver"`
	SpreadsheetID        string         `json:"spreadsheet_id"`
	WorksheetIndex       *int           `json:"worksheet_index"`
	CredentialsFile      string         `json:"credentials_file"`
	DatabaseDSN          string         `json:"database_dsn"`
	AdminSecret          string         `json:"admin_secret"`
	InstructorName       string         `json:"instructor_name"`
	InstructorHandle     string         `json:"instructor_handle"`
	ProfileBaseURL       string         `json:"profile_base_url"`
	RateLimitWindow      timex.Duration `json:"rate_limit_window"`
	RateLimitMaxAttempts int            `json:"rate_limit_max_attempts"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded.
//
// Only fields present in the file override the existing values, so a
// partial file overlays cleanly on the defaults. The worksheet index uses
// a pointer so an explicit 0 in the file is distinguishable from absence.
// If the file cannot be read or contains invalid JSON, the function
// panics: a config file that exists but cannot be used is a deployment
// error, not a condition to run through.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.StoreDriver != "" {
		config.StoreDriver = c.StoreDriver
	}
	if c.SpreadsheetID != "" {
		config.SpreadsheetID = c.SpreadsheetID
	}
	if c.WorksheetIndex != nil {
		config.WorksheetIndex = *c.WorksheetIndex
	}
	if c.CredentialsFile != "" {
		config.CredentialsFile = c.CredentialsFile
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.AdminSecret != "" {
		config.AdminSecret = c.AdminSecret
	}
	if c.InstructorName != "" {
		config.InstructorName = c.InstructorName
	}
	if c.InstructorHandle != "" {
		config.InstructorHandle = c.InstructorHandle
	}
	if c.ProfileBaseURL != "" {
		config.ProfileBaseURL = c.ProfileBaseURL
	}
	if c.RateLimitWindow.Duration != 0 {
		config.RateLimitWindow = time.Duration(c.RateLimitWindow.Duration)
	}
	if c.RateLimitMaxAttempts != 0 {
		config.RateLimitMaxAttempts = c.RateLimitMaxAttempts
	}
}
