package main

import (
	_ "embed"
	"html/template"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed www/index.html
var indexTemplateEmbed string

var (
	indexTemplateOnce sync.Once
	indexTemplate     *template.Template
	indexTemplateErr  error
)

// GetIndexTemplate returns the page template. With noEmbed set it is
// re-read from www/ on every call so edits show up without a rebuild.
func GetIndexTemplate(noEmbed bool) (*template.Template, error) {
	if noEmbed {
		log.Debug().Msg("Reading index.html template dynamically from filesystem")
		return template.ParseFiles("www/index.html")
	}

	indexTemplateOnce.Do(func() {
		log.Debug().Msg("Caching embedded index.html")
		indexTemplate, indexTemplateErr = template.New("index.html").Parse(indexTemplateEmbed)
	})
	return indexTemplate, indexTemplateErr
}
