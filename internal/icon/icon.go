// Package icon draws the application icon: a clipboard with a checkmark on
// a rounded blue square.
package icon

import (
	"fmt"
	"image"

	"github.com/testshot/iconmaker/internal/render"
)

// Layers returns the icon layers in paint order.
func Layers() []render.Layer {
	return []render.Layer{Background{}, Clipboard{}, Checkmark{}}
}

// Renderer composes the icon layers onto a fresh canvas.
type Renderer struct {
	Size   int
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewRenderer() *Renderer { return &Renderer{Size: render.CanvasSize} }

// Render draws every layer and returns the finished canvas.
func (r *Renderer) Render() *image.RGBA {
	d := render.NewRasterDrawer(r.Size, r.Size)
	d.Logger = r.Logger
	for _, layer := range Layers() {
		layer.Draw(d)
		if r.Logger != nil {
			r.Logger.Infof("icon", "layer %s drawn", layerName(layer))
		}
	}
	return d.Canvas()
}

func layerName(layer render.Layer) string {
	return fmt.Sprintf("%T", layer)
}
