// Package config loads runtime configuration for the ghostwrite CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -config (or -c).
//  3. Environment: OPENAI_API_KEY, overridden by GHOSTWRITE_API_KEY.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-config string         JSON config file
//	-model string          completion model id
//	-base-url string       completion API base URL
//	-api-key-file string   file holding the API key (watched for rotation)
//	-max-tokens int        maximum continuation length in tokens
//	-temperature float     sampling temperature
//	-debounce duration     quiet interval before a request
//	-reveal duration       delay between revealed graphemes
//	-timeout duration      per-request deadline (0 disables)
//	-theme string          light, dark or auto
//	-wrap string           word or grapheme
//	-log-file string       append logs to this file
//	-log-level string      debug, info, warn or error
//
// # JSON schema
//
// Durations are strings like "500ms" or integer nanoseconds:
//
//	{
//	  "model": "gpt-4o-mini",
//	  "max_tokens": 4,
//	  "temperature": 0.7,
//	  "debounce": "500ms",
//	  "reveal_interval": "30ms",
//	  "theme": "auto",
//	  "log_file": "/tmp/ghostwrite.log"
//	}
//
// Fields missing from the file keep their earlier value.
package config
