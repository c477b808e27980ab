// Package config resolves the settings for one invocation.
//
// Settings come from four layers, highest priority first: command-line
// flags, interactive answers, the user defaults file and built-in defaults.
// The result is a ProvisioningConfig, which is never modified after it is
// built.
//
// Enumerated inputs (templates, package managers) are parsed into closed
// types at the boundary so raw strings never reach the provisioning steps.
package config
