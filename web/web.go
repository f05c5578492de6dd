// Package web embeds the default site: the HTML skeleton and the per-language content bundles.
package web

import "embed"

// SkeletonPath is the path of the HTML skeleton inside FS.
const SkeletonPath = "index.html"

// FS holds index.html and content/<lang>.json.
//
//go:embed index.html content/*.json
var FS embed.FS
