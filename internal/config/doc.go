// Package config loads the diary server and client configuration.
//
// Values are assembled from environment variables, command-line flags and
// an optional JSON file, merged with mergo (the first source that sets a
// field wins: env, then flags, then JSON, then built-in defaults) and
// validated before use.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
