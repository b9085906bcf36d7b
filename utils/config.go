package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DisposaBoy/JsonConfigReader"
	yaml "gopkg.in/yaml.v3"
)

// ConfigStructure is structure of main configuration
type ConfigStructure struct { // nolint: maligned
	// General
	LogLevel  string `json:"logLevel"                      yaml:"log_level"`
	LogFormat string `json:"logFormat"                     yaml:"log_format"`

	// Queries
	SearchTags        []string          `json:"searchTags"                    yaml:"search_tags"`
	IgnoredCharacters string            `json:"ignoredCharacters"             yaml:"ignored_characters"`
	QueryCacheSize    int               `json:"queryCacheSize"                yaml:"query_cache_size"`
	SavedSearches     map[string]string `json:"savedSearches"                 yaml:"saved_searches"`
	DisabledPlugins   []string          `json:"disabledPlugins"               yaml:"disabled_plugins"`

	// Library
	LibraryPaths       []string `json:"libraryPaths"                  yaml:"library_paths"`
	DownloadSpeedLimit int64    `json:"downloadSpeedLimit"            yaml:"download_limit"`
	DownloadRetries    int      `json:"downloadRetries"               yaml:"download_retries"`

	// Server
	EnableMetricsEndpoint bool    `json:"enableMetricsEndpoint"         yaml:"enable_metrics_endpoint"`
	EnableSwaggerEndpoint bool    `json:"enableSwaggerEndpoint"         yaml:"enable_swagger_endpoint"`
	APIRequestsPerSecond  float64 `json:"apiRequestsPerSecond"          yaml:"api_requests_per_second"`
	APIBurst              int     `json:"apiBurst"                      yaml:"api_burst"`
	APIMaxRecords         int     `json:"apiMaxRecords"                 yaml:"api_max_records"`
}

// Config is configuration for qlquery, shared by all modules
var Config = ConfigStructure{
	LogLevel:              "info",
	LogFormat:             "default",
	SearchTags:            []string{},
	IgnoredCharacters:     "",
	QueryCacheSize:        256,
	SavedSearches:         map[string]string{},
	DisabledPlugins:       []string{},
	LibraryPaths:          []string{},
	DownloadSpeedLimit:    0,
	DownloadRetries:       0,
	EnableMetricsEndpoint: false,
	EnableSwaggerEndpoint: false,
	APIRequestsPerSecond:  0,
	APIBurst:              10,
	APIMaxRecords:         10000,
}

// ConfigLocations returns config files searched in order, when none
// is given explicitly
func ConfigLocations() []string {
	return []string{
		filepath.Join(os.Getenv("HOME"), ".qlquery.conf"),
		"/usr/local/etc/qlquery.conf",
		"/etc/qlquery.conf",
	}
}

// LoadConfig loads configuration from json (with comments) or yaml file
func LoadConfig(filename string, config *ConfigStructure) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	decJSON := json.NewDecoder(JsonConfigReader.New(f))
	if err = decJSON.Decode(&config); err != nil {
		_, _ = f.Seek(0, 0)
		decYAML := yaml.NewDecoder(f)
		if err2 := decYAML.Decode(&config); err2 != nil {
			err = fmt.Errorf("invalid yaml (%s) or json (%s)", err2, err)
		} else {
			err = nil
		}
	}
	if err != nil {
		return err
	}

	return config.Validate()
}

// Validate checks values which can't be fixed up silently
func (conf *ConfigStructure) Validate() error {
	if conf.QueryCacheSize <= 0 {
		return fmt.Errorf("queryCacheSize should be positive, got %d", conf.QueryCacheSize)
	}
	if conf.APIRequestsPerSecond < 0 {
		return fmt.Errorf("apiRequestsPerSecond can't be negative")
	}
	if conf.APIRequestsPerSecond > 0 && conf.APIBurst <= 0 {
		return fmt.Errorf("apiBurst should be positive when rate limiting is enabled")
	}
	if conf.DownloadSpeedLimit < 0 {
		return fmt.Errorf("downloadSpeedLimit can't be negative")
	}
	if conf.DownloadRetries < 0 {
		return fmt.Errorf("downloadRetries can't be negative")
	}
	for name := range conf.SavedSearches {
		if name == "" {
			return fmt.Errorf("saved search with empty name")
		}
	}
	return nil
}

// SaveConfig write configuration to json file
func SaveConfig(filename string, config *ConfigStructure) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	encoded, err := json.MarshalIndent(&config, "", "  ")
	if err != nil {
		return err
	}

	_, err = f.Write(encoded)
	return err
}

// SaveConfigYAML write configuration to yaml file
func SaveConfigYAML(filename string, config *ConfigStructure) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	yamlData, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("error marshaling to YAML: %s", err)
	}

	_, err = f.Write(yamlData)
	return err
}
