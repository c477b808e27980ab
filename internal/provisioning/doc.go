// Package provisioning creates a project by running an ordered list of
// steps against a resolved configuration.
//
// # Core Types
//
// Context carries the configuration, the resolved package manager, the
// command runner, the observer and the logger.
// Step is a label, an action and an abort-on-failure flag.
// Pipeline runs steps strictly in order and turns the first aborting
// failure into a single *StepError.
//
// # Steps
//
// Steps returns the fixed sequence for a configuration: scaffold the
// Next.js app, install shadcn/ui, wire the Surfer design system, lay down
// the template, install dependencies, initialize git and write the README.
// Each step relies on the files left by the ones before it.
package provisioning
