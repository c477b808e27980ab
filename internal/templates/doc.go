// Package templates holds the files written into a generated project.
//
// Static files are embedded as-is. Files ending in .tmpl are rendered with
// text/template. A template preset may ship a whole tree that is copied over
// the project's src directory; presets without one get a synthesized page.
package templates
