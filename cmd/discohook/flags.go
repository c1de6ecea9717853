package main

import "flag"

// cliFlags holds the parsed command-line flags.
type cliFlags struct {
	ConfigFile string
	Content    string
	LogLevel   string
}

func parseFlags() cliFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	content := flag.String("content", "", "Message content (overrides the config file if set)")
	logLevel := flag.String("log-level", "", "Log level: trace, debug, info, warn, error, fatal (overrides the config file if set)")
	flag.Parse()

	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}

	return cliFlags{
		ConfigFile: *configFile,
		Content:    *content,
		LogLevel:   *logLevel,
	}
}
