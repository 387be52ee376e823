// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -addr, -base-url, -format, -session, -verbose, -version

package main

import "flag"

type cliArgs struct {
	configPath string
	addr       string
	baseURL    string
	format     string
	session    string
	verbose    bool
	version    bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.configPath, "config", "", "Path to config file (JSON)")
	flag.StringVar(&args.addr, "addr", "", "Listen address for serve mode (e.g., :8080)")
	flag.StringVar(&args.baseURL, "base-url", "", "Institute website base URL")
	flag.StringVar(&args.format, "format", "text", "Output format for ask mode: text or json")
	flag.StringVar(&args.session, "session", "", "Session id to continue in ask mode")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
