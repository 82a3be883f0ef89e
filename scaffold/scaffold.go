// Package scaffold provides embedded template files for the portfolio CLI
// to generate new projects from.
package scaffold

import "embed"

// Templates contains the starter-site files written by "portfolio new".
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
