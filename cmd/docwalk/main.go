// cmd/docwalk/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	pflag "github.com/spf13/pflag"
)

const Version = "0.1.2"

// --- Global Variables for Flags ---
var (
	dryRunFlag      bool
	formatFlag      string
	configFileFlag  string
	excludePatterns []string
	gitignoreFlag   bool
	languagesFlag   string
	maxDepthFlag    int
	pruneFlag       bool
	logLevelStr     string
	versionFlag     bool
)

func init() {
	// Define command-line flags using pflag
	pflag.BoolVarP(&dryRunFlag, "dry-run", "n", false, "Preview mode: report what would be written without touching any file.")
	pflag.StringVar(&formatFlag, "format", "markdown", "Output format: markdown or json.")
	pflag.StringVarP(&configFileFlag, "config", "c", "", "Path to a custom configuration file.")
	pflag.StringSliceVarP(&excludePatterns, "exclude", "x", []string{}, "Comma-separated glob patterns to skip (adds to config).")
	pflag.BoolVar(&gitignoreFlag, "gitignore", false, "Apply the root .gitignore while scanning (overrides config).")
	pflag.StringVar(&languagesFlag, "languages", "", "Path to a YAML language definition file (overrides config).")
	pflag.IntVar(&maxDepthFlag, "max-depth", 0, "Maximum recursion depth; 0 uses the configured default.")
	pflag.BoolVar(&pruneFlag, "prune-backups", false, "Remove backup documents under the path instead of generating.")
	pflag.StringVar(&logLevelStr, "loglevel", "info", "Set logging verbosity (debug, info, warn, error).")
	pflag.BoolVarP(&versionFlag, "version", "v", false, "Print version and exit.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %s [flags] [path]

Generate a summary document in every directory under path (default: the
current directory), describing files, languages, and shallow code structure.
An existing document is renamed with a backup suffix before the new one is
written.

Flags:
`, os.Args[0])
		pflag.PrintDefaults()
	}
}

// --- Main Execution ---
func main() {
	pflag.Parse()

	if versionFlag {
		fmt.Printf("docwalk version %s\n", Version)
		os.Exit(0)
	}

	// Setup Logging
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, defaulting to 'info'.\n", logLevelStr)
		logLevel = slog.LevelInfo
	}
	logOpts := &slog.HandlerOptions{Level: logLevel, AddSource: logLevel <= slog.LevelDebug}
	handler := slog.NewTextHandler(os.Stderr, logOpts)
	slog.SetDefault(slog.New(handler))

	// Load Configuration
	appConfig, loadErr := loadConfig(configFileFlag)
	if loadErr != nil {
		if pflag.CommandLine.Changed("config") {
			fmt.Fprintf(os.Stderr, "Error: could not load configuration file '%s': %v\n", configFileFlag, loadErr)
			os.Exit(1)
		}
		slog.Error("Failed to load configuration, using defaults.", "error", loadErr)
		appConfig = defaultConfig()
	}

	// Root Path
	positionalArgs := pflag.Args()
	if len(positionalArgs) > 1 {
		fmt.Fprintf(os.Stderr, "Refusing execution: Multiple positional arguments provided: %v.\nPass a single path, or none for the current directory.\n", positionalArgs)
		os.Exit(1)
	}
	rootArg := "."
	if len(positionalArgs) == 1 && positionalArgs[0] != "" {
		rootArg = positionalArgs[0]
		slog.Debug("Using path from positional argument.", "path", rootArg)
	}

	rootPath, err := filepath.Abs(rootArg)
	if err != nil {
		slog.Error("Could not determine absolute path.", "path", rootArg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: Invalid path '%s': %v\n", rootArg, err)
		os.Exit(1)
	}

	// Initial Stat Check for early user feedback
	rootInfo, err := os.Stat(rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: Path '%s' does not exist.\n", rootPath)
		} else {
			fmt.Fprintf(os.Stderr, "Error accessing path '%s': %v\n", rootPath, err)
		}
		os.Exit(1)
	}
	if !rootInfo.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: Path '%s' is not a directory.\n", rootPath)
		os.Exit(1)
	}

	// Output Format
	switch formatFlag {
	case "markdown":
	case "json":
		slog.Warn("json output is not implemented yet, rendering markdown.")
	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown format %q (expected markdown or json).\n", formatFlag)
		os.Exit(1)
	}

	// Determine final settings (flags override or extend config)
	documentName := *appConfig.DocumentName
	backupSuffix := *appConfig.BackupSuffix

	finalExcludePatterns := append([]string{}, appConfig.ExcludePatterns...)
	if pflag.CommandLine.Changed("exclude") {
		slog.Debug("Adding exclude patterns from command line flag.", "patterns", excludePatterns)
		finalExcludePatterns = append(finalExcludePatterns, excludePatterns...)
	}

	finalUseGitignore := *appConfig.UseGitignore
	if pflag.CommandLine.Changed("gitignore") {
		finalUseGitignore = gitignoreFlag
	}

	languagesFile := *appConfig.LanguagesFile
	if pflag.CommandLine.Changed("languages") {
		languagesFile = languagesFlag
	}

	maxDepth := *appConfig.MaxDepth
	if pflag.CommandLine.Changed("max-depth") {
		maxDepth = maxDepthFlag
	}

	slog.Debug("Final settings resolved.",
		"root", rootPath,
		"document_name", documentName,
		"backup_suffix", backupSuffix,
		"exclude_patterns", finalExcludePatterns,
		"use_gitignore", finalUseGitignore,
		"languages_file", languagesFile,
		"max_depth", maxDepth,
		"dry_run", dryRunFlag,
		"format", formatFlag,
	)

	// Prune mode replaces generation entirely.
	if pruneFlag {
		fmt.Printf("Scanning for backup documents under %s\n", rootPath)
		pruneStats := PruneBackups(rootPath, documentName, backupSuffix, dryRunFlag, os.Stdout)
		if pruneStats.Failures > 0 {
			os.Exit(1)
		}
		return
	}

	// Language Table
	var overrides map[string]string
	if languagesFile != "" {
		overrides, err = loadLanguageOverrides(languagesFile)
		if err != nil {
			slog.Warn("Could not load language definitions, using the built-in table.",
				"path", languagesFile, "error", err)
			overrides = nil
		} else {
			slog.Info("Loaded language definitions.", "path", languagesFile, "suffixes", len(overrides))
		}
	}
	classifier := NewClassifier(overrides)
	slog.Debug("Language table prepared.", "suffixes", mapsKeys(classifier.table))

	// --- Walk and Write ---
	analyzer := NewDirectoryAnalyzer(rootPath, NewFileAnalyzer(classifier), finalExcludePatterns, finalUseGitignore)
	walker := NewWalker(analyzer, NewRenderer(), documentName, backupSuffix, dryRunFlag, maxDepth)

	runStats, runErr := walker.Run(rootPath)
	if runErr != nil {
		slog.Error("Run aborted.", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	slog.Debug("Execution finished.")

	if runStats.Failures > 0 {
		os.Exit(1)
	}
}
