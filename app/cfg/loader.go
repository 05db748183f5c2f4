package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Grab configuration
	Days      int      `short:"d" long:"days" env:"EPG_DAYS" default:"0" description:"Number of days to grab (0 = today only)"`
	Services  []string `short:"s" long:"service" env:"EPG_SERVICES" env-delim:"," description:"Service name(s) to grab (default: all configured)"`
	ChannelID string   `short:"c" long:"channel" env:"EPG_CHANNEL" description:"Grab a single channel ID"`
	Output    string   `short:"o" long:"output" env:"EPG_OUTPUT" description:"Output directory for the XMLTV file"`
	ConfigDir string   `long:"config-dir" env:"EPG_CONFIG_DIR" default:"." description:"Directory containing services/ and mappings.yaml"`

	// Serve configuration
	Serve bool   `long:"serve" env:"EPG_SERVE" description:"Serve the generated guide over HTTP after grabbing"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"HTTP server port for serve mode"`

	// Collaborators
	SportsDB string `long:"sports-db" env:"EPG_SPORTS_DB" description:"Path to the sports schedule cache database (optional)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Brasil-EPG/2.0" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"EPG_TIMEOUT" default:"30" description:"HTTP request timeout in seconds"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Days:      raw.Days,
		Services:  raw.Services,
		ChannelID: raw.ChannelID,
		Output:    raw.Output,
		ConfigDir: raw.ConfigDir,
		Serve:     raw.Serve,
		Port:      raw.Port,
		SportsDB:  raw.SportsDB,
		UserAgent: raw.UserAgent,
		Timeout:   raw.Timeout,
		Debug:     raw.Debug,
		Version:   GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
