// Package assets embeds the static files served under /assets/.
//
// css/output.css is generated from css/input.css with the tailwind CLI:
//
//	tailwindcss -i assets/css/input.css -o assets/css/output.css --minify
package assets

import "embed"

//go:embed css js
var AssetsFS embed.FS
