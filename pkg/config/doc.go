// Package config loads docrender settings. Values are layered: the
// embedded defaults first, then the user configuration file, an explicit
// --config file, DOCRENDER_ environment variables and finally overrides
// set from command-line flags.
package config
