// Package web bundles the templates, static assets and copy deck into the binary.
package web

import "embed"

//go:embed templates static content
var FS embed.FS
