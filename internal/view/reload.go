package view

import (
	"log"
	"sync"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin/render"
)

// Reloadable is an HTMLRender whose templates can be rebuilt while the
// server is running.
type Reloadable struct {
	dir string

	mu       sync.RWMutex
	renderer multitemplate.Render
}

func NewReloadable(dir string) (*Reloadable, error) {
	r, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return &Reloadable{dir: dir, renderer: r}, nil
}

// Reload rebuilds the templates. On error the previous set stays active.
func (r *Reloadable) Reload() {
	next, err := Load(r.dir)
	if err != nil {
		log.Printf("Template reload failed: %v", err)
		return
	}
	r.mu.Lock()
	r.renderer = next
	r.mu.Unlock()
}

func (r *Reloadable) Instance(name string, data any) render.Render {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.renderer.Instance(name, data)
}
