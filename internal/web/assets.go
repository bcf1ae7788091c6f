package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed assets/*
var embeddedAssets embed.FS

// stylesheetURL is where pages link the embedded stylesheet.
const stylesheetURL = "/assets/quiz.css"

// assetsHandler serves the embedded assets directory under /assets/.
func assetsHandler() (http.Handler, error) {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("web: open embedded assets: %w", err)
	}
	return http.StripPrefix("/assets/", http.FileServer(http.FS(sub))), nil
}
