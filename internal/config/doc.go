// Package config provides configuration loading, merging, and validation
// facilities for the metadata console.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (with an optional .env file)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry point is [Load].
package config
