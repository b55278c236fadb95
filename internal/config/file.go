package config

import "time"

// File represents the structure of the .mdlinkcheck configuration file.
// Every field is optional; zero values leave the corresponding default
// untouched.
type File struct {
	// Root is the directory to scan when no argument or environment
	// variable is given.
	Root string `yaml:"root,omitempty"`

	// Timeout is the per-request timeout, e.g. "10s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Concurrency is the number of links checked at the same time.
	Concurrency int `yaml:"concurrency,omitempty"`

	// SkipSchemes lists URI schemes whose links are not checked.
	SkipSchemes []string `yaml:"skipSchemes,omitempty"`

	// Encoding is the IANA name of the Markdown files' character encoding.
	Encoding string `yaml:"encoding,omitempty"`

	// Proxy is a SOCKS5 proxy address in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`

	// FailOnBroken makes the command exit non-zero when problems are found.
	FailOnBroken bool `yaml:"failOnBroken,omitempty"`
}

// Apply copies every value set in the file onto cfg.
// Command line flags are applied afterwards and win over the file.
func (f *File) Apply(cfg *Config) {
	if f.Root != "" {
		cfg.Root = f.Root
	}
	if f.Timeout != 0 {
		cfg.Timeout = f.Timeout
	}
	if f.Concurrency != 0 {
		cfg.Concurrency = f.Concurrency
	}
	if len(f.SkipSchemes) > 0 {
		cfg.SkipSchemes = append([]string(nil), f.SkipSchemes...)
	}
	if f.Encoding != "" {
		cfg.Encoding = f.Encoding
	}
	if f.Proxy != "" {
		cfg.ProxyAddress = f.Proxy
	}
	if f.FailOnBroken {
		cfg.FailOnBroken = true
	}
}
