// Package cli implements the apimctl command line.
//
// Every command resolves its configuration from flags, APIMCTL_* environment
// variables and YAML config files before talking to the Management API.
package cli
