// Package banner prints the one-shot messages around a run: the welcome
// line, the success summary and the terminal error or warning lines.
//
// The progress view itself lives in package tui.
package banner
