// cmd/docwalk/config.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the tool's persistent settings. Pointer fields distinguish
// "absent from the file" from an explicit zero value.
type Config struct {
	DocumentName    *string  `toml:"document_name"`
	BackupSuffix    *string  `toml:"backup_suffix"`
	ExcludePatterns []string `toml:"exclude_patterns"`
	UseGitignore    *bool    `toml:"use_gitignore"`
	LanguagesFile   *string  `toml:"languages_file"`
	MaxDepth        *int     `toml:"max_depth"`
}

// defaultConfig returns a fresh settings struct. Each call hands out its own
// pointers, so decoding a file can never write through to shared defaults.
func defaultConfig() Config {
	return Config{
		DocumentName:    func(s string) *string { return &s }("README.md"),
		BackupSuffix:    func(s string) *string { return &s }(".backup"),
		ExcludePatterns: []string{},
		UseGitignore:    func(b bool) *bool { return &b }(false),
		LanguagesFile:   func(s string) *string { return &s }(""),
		MaxDepth:        func(i int) *int { return &i }(128),
	}
}

// loadConfig finds and loads the configuration. With an empty
// customConfigPath it tries ~/.config/docwalk/config.toml and treats absence
// as normal; a custom path that cannot be read is an error.
func loadConfig(customConfigPath string) (Config, error) {
	defaults := defaultConfig()
	cfg := defaults
	isCustomPath := customConfigPath != ""

	var configFile string
	if isCustomPath {
		var err error
		configFile, err = filepath.Abs(customConfigPath)
		if err != nil {
			slog.Error("Could not determine absolute path for custom config file.", "path", customConfigPath, "error", err)
			return defaults, fmt.Errorf("invalid custom config path '%s': %w", customConfigPath, err)
		}
		slog.Debug("Attempting to load configuration from custom path.", "path", configFile)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			slog.Warn("Could not determine user home directory. Using default settings only.", "error", err)
			return cfg, nil
		}
		configFile = filepath.Join(homeDir, ".config", "docwalk", "config.toml")
		slog.Debug("Attempting to load configuration from default path.", "path", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if isCustomPath {
				slog.Error("Specified configuration file not found.", "path", configFile)
				return defaults, fmt.Errorf("specified configuration file '%s' not found", configFile)
			}
			slog.Info("No default config file found, using default settings.", "path", configFile)
			return cfg, nil
		}
		slog.Error("Error reading config file.", "path", configFile, "error", err)
		return defaults, fmt.Errorf("error reading config file '%s': %w", configFile, err)
	}

	if len(content) == 0 {
		slog.Info("Configuration file is empty, using default settings.", "path", configFile)
		return cfg, nil
	}

	slog.Info("Loading configuration.", "path", configFile)
	loadedCfg := defaultConfig()
	if meta, err := toml.Decode(string(content), &loadedCfg); err != nil {
		slog.Error("Error decoding TOML config file, using default settings.", "path", configFile, "error", err)
		return defaults, fmt.Errorf("error decoding TOML from '%s': %w", configFile, err)
	} else if len(meta.Undecoded()) > 0 {
		slog.Warn("Unrecognized keys found in config file.", "path", configFile, "keys", meta.Undecoded())
	}

	cfg = loadedCfg

	// Ensure pointer fields have defaults if nil after decoding
	if cfg.DocumentName == nil {
		cfg.DocumentName = defaults.DocumentName
		slog.Debug("Config key 'document_name' not set, using default.", "value", *cfg.DocumentName)
	}
	if cfg.BackupSuffix == nil {
		cfg.BackupSuffix = defaults.BackupSuffix
		slog.Debug("Config key 'backup_suffix' not set, using default.", "value", *cfg.BackupSuffix)
	}
	if cfg.UseGitignore == nil {
		cfg.UseGitignore = defaults.UseGitignore
		slog.Debug("Config key 'use_gitignore' not set, using default.", "value", *cfg.UseGitignore)
	}
	if cfg.LanguagesFile == nil {
		cfg.LanguagesFile = defaults.LanguagesFile
		slog.Debug("Config key 'languages_file' not set, using default.", "value", *cfg.LanguagesFile)
	}
	if cfg.MaxDepth == nil {
		cfg.MaxDepth = defaults.MaxDepth
		slog.Debug("Config key 'max_depth' not set, using default.", "value", *cfg.MaxDepth)
	}
	if *cfg.DocumentName == "" {
		slog.Warn("Config key 'document_name' is empty, using default.", "value", *defaults.DocumentName)
		cfg.DocumentName = defaults.DocumentName
	}
	if *cfg.BackupSuffix == "" {
		slog.Warn("Config key 'backup_suffix' is empty, using default.", "value", *defaults.BackupSuffix)
		cfg.BackupSuffix = defaults.BackupSuffix
	}

	slog.Debug("Configuration loaded successfully.",
		"source", configFile,
		"document_name", *cfg.DocumentName,
		"backup_suffix", *cfg.BackupSuffix,
		"exclude_patterns", cfg.ExcludePatterns,
		"use_gitignore", *cfg.UseGitignore,
		"languages_file", *cfg.LanguagesFile,
		"max_depth", *cfg.MaxDepth,
	)

	return cfg, nil
}
