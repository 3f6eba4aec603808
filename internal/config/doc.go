// Package config defines the configuration surface for idstamp: defaults,
// validation, and the optional .idstamp YAML configuration file.
package config
