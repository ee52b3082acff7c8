package web

import _ "embed"

// The storefront page markup is embedded at build time; the meta tags it needs
// are injected per request, never baked in.
//
//go:embed static/shop.html
var shopPage []byte
