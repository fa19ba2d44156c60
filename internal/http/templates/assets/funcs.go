// Package assets contributes the asset-lookup helpers to the template func map.
package assets

import (
	"html/template"

	httpassets "github.com/kwakyosong/platform-ui/internal/http/assets"
)

// Options configures the asset template helpers.
type Options struct {
	Resolver *httpassets.AssetResolver
	DevMode  bool
	// CriticalCSS supplies the inlined above-the-fold CSS; nil renders none.
	CriticalCSS func() string
}

// Funcs returns the "asset" and "criticalCSS" template helpers.
func Funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"asset": func(logicalName string) string {
			return httpassets.ResolveAsset(opts.Resolver, logicalName, opts.DevMode)
		},
		"criticalCSS": func() template.CSS {
			if opts.CriticalCSS == nil {
				return ""
			}
			// #nosec G203 - sourced from our own build output, not user input
			return template.CSS(opts.CriticalCSS())
		},
	}
}
