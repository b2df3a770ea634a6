// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// The ODPT consumer key comes from the ODPT_API_KEY environment variable so
// it never lands in a checked-in file.
package config
