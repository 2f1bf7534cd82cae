// Package render builds the page templates and plugs them into gin.
package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/multitemplate"
	ginrender "github.com/gin-gonic/gin/render"
)

const (
	layoutFile  = "templates/layout.html"
	partialGlob = "templates/partials/*.html"
	pageGlob    = "templates/pages/*.html"
)

// Funcs are available in every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"year": func() int { return time.Now().Year() },
		"join": strings.Join,
		"contains": func(list []string, v string) bool {
			return slices.Contains(list, v)
		},
		"add": func(a, b int) int { return a + b },
	}
}

// Renderer is a gin HTMLRender holding one template set per page: the
// shared layout and partials plus that page's blocks.
type Renderer struct {
	multitemplate.Render
}

var _ ginrender.HTMLRender = (*Renderer)(nil)

// New parses the layout, partials and pages from fsys. Pages are keyed by
// file name without extension, so templates/pages/home.html is "home".
func New(fsys fs.FS) (r *Renderer, err error) {
	partials, err := fs.Glob(fsys, partialGlob)
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}
	files, err := fs.Glob(fsys, pageGlob)
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no page templates match %s", pageGlob)
	}

	// multitemplate panics on parse errors.
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("parse templates: %v", p)
		}
	}()

	mt := multitemplate.New()
	funcs := Funcs()
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), path.Ext(file))
		set := append([]string{layoutFile}, partials...)
		mt.AddFromFSFuncs(name, funcs, fsys, append(set, file)...)
	}
	return &Renderer{Render: mt}, nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.Render[name]
	return ok
}
