// Package config loads vibematch settings from the environment.
//
// [Load] reads an optional .env file with godotenv, then the VIBE_*
// variables. Unparseable numbers fall back to their defaults. [Config.Validate]
// rejects out-of-range values. Command-line flags override what Load returns.
package config
