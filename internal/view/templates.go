package view

import (
	"fmt"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
)

// pages are rendered inside the base layout.
var pages = []string{
	"auth/login.html",
	"auth/register.html",
	"report/list.html",
	"report/detail.html",
	"report/create.html",
	"admin/index.html",
	"error.html",
}

// fragments are HTMX partials rendered on their own, with the shared
// components available.
var fragments = []string{
	"report/feed.html",
	"admin/edit.html",
}

// Load builds the renderer from templatesDir. Each page gets its own template
// set so every view can define its own "content" block. Parse errors are
// returned instead of panicking so a reload can keep the previous set.
func Load(templatesDir string) (r multitemplate.Render, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r, err = nil, fmt.Errorf("parse templates: %v", rec)
		}
	}()

	r = multitemplate.New()

	layouts, err := filepath.Glob(filepath.Join(templatesDir, "layouts", "*.html"))
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no layouts found in %s", templatesDir)
	}

	includes, err := filepath.Glob(filepath.Join(templatesDir, "includes", "*.html"))
	if err != nil {
		return nil, err
	}

	components, err := filepath.Glob(filepath.Join(templatesDir, "components", "*.html"))
	if err != nil {
		return nil, err
	}

	funcMap := Funcs()

	for _, page := range pages {
		files := make([]string, 0, len(layouts)+len(includes)+len(components)+1)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, components...)
		files = append(files, filepath.Join(templatesDir, "views", page))
		r.AddFromFilesFuncs(page, funcMap, files...)
	}

	for _, frag := range fragments {
		files := make([]string, 0, len(components)+1)
		files = append(files, filepath.Join(templatesDir, "views", frag))
		files = append(files, components...)
		r.AddFromFilesFuncs(frag, funcMap, files...)
	}

	return r, nil
}
