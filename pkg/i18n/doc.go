// Package i18n translates UI strings from YAML files and negotiates the
// request language.
//
//	//go:embed *.yaml
//	var files embed.FS
//
//	tr, err := i18n.Load(files, i18n.WithDefaultLanguage("en"))
//	r.Use(i18n.Middleware(tr))
//	...
//	tr.Tc(ctx, "account.errors.email")
//
// Language negotiation uses golang.org/x/text/language, so regional variants
// such as es-MX resolve to a loaded base language.
package i18n
