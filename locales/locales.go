// Package locales embeds the translation files loaded by pkg/i18n.
package locales

import "embed"

//go:embed *.yaml
var FS embed.FS
