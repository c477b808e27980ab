// Package testing provides test utilities, builders, and fixtures shared by
// the package tests.
//
// This package centralizes common testing patterns to avoid duplication
// across test files:
//   - ConfigBuilder: Fluent builder for provisioning configurations
//   - RecordingRunner: shell.Runner that records commands instead of running them
//   - MockRunner: testify mock of shell.Runner
//   - ScaffoldFixture: fakes the files create-next-app leaves behind
//
// Usage:
//
//	cfg := testing.NewConfigBuilder().
//	    WithTemplate(config.TemplateDashboard).
//	    Build()
//
//	runner := testing.NewRecordingRunner()
//	runner.OnCommand("create-next-app@latest", fixture.Scaffold)
package testing
