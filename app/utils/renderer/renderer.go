package renderer

import (
	"github.com/unrolled/render"
)

// New returns the JSON renderer shared by every handler.
func New() *render.Render {
	return render.New(render.Options{
		UnEscapeHTML: true,
	})
}
