package config

import "github.com/spf13/pflag"

// Flags holds the command-line overrides. Only flags the user actually set
// are applied on top of the other sources.
type Flags struct {
	fs *pflag.FlagSet

	ConfigFile string
	APIBaseURL string
	Origin     string
	SessionDB  string
	Verbose    bool
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigFile, "config", "c", "", "path to a JSON or YAML config file")
	fs.StringVarP(&f.APIBaseURL, "api", "a", "", "base URL of the SecureNote API")
	fs.StringVar(&f.Origin, "origin", "", "origin used to build share links")
	fs.StringVar(&f.SessionDB, "db", "", "path of the local session database")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "enable debug logging")
	return f
}

func (f *Flags) apply(cfg *Config) {
	if f.fs.Changed("api") {
		cfg.APIBaseURL = f.APIBaseURL
	}
	if f.fs.Changed("origin") {
		cfg.Origin = f.Origin
	}
	if f.fs.Changed("db") {
		cfg.SessionDB = f.SessionDB
	}
	if f.Verbose {
		cfg.LogLevel = "debug"
	}
}
