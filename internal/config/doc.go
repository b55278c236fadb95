// Package config provides configuration structures and utilities for mdlinkcheck.
// It defines the scan options, the optional YAML configuration file and
// the rules for merging the two with command line flags.
package config
