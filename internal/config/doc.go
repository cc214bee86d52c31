// Package config provides configuration loading, merging, and validation
// for the sync client and the stub backend.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (a .env file is loaded first if present)
//  3. JSON config file (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetStubConfig].
package config
