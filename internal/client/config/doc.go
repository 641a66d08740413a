// Package config loads runtime configuration for the SecureNote CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c/--config. The format is
//     chosen by extension; anything other than .yaml/.yml is read as JSON.
//  3. Environment variables (see the env tags on Config).
//  4. Command-line flags (see AddFlags), which override earlier values.
//
// Supported flags
//
//	-c, --config string   config file
//	-a, --api string      base URL of the SecureNote API
//	    --origin string   origin share links are built on
//	    --db string       path of the local session database
//	-v, --verbose         debug logging
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "origin": "http://localhost:5173",
//	  "session_db": "securenote.db",
//	  "log_level": "info",
//	  "request_timeout": "15s",
//	  "profile_failure_delay": "2s"
//	}
package config
