package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

type Renderer struct {
	Dir    string
	Format string
	Width  vg.Length
	Height vg.Length
	Logger lager.Logger
}

func NewRenderer(dir, format string, logger lager.Logger) *Renderer {
	return &Renderer{
		Dir:    dir,
		Format: format,
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
		Logger: logger,
	}
}

func (r *Renderer) FileName(i int, title string) string {
	slug := strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		slug = "plot"
	}

	return fmt.Sprintf("%02d-%s.%s", i+1, slug, r.Format)
}

// Render saves every figure into Dir and returns the written paths.
func (r *Renderer) Render(figures []Figure) ([]string, error) {
	if len(figures) == 0 {
		return nil, nil
	}

	err := os.MkdirAll(r.Dir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed-to-create-output-dir")
	}

	paths := make([]string, 0, len(figures))
	for i, figure := range figures {
		path := filepath.Join(r.Dir, r.FileName(i, figure.Title))

		err := figure.Plot.Save(r.Width, r.Height, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed-to-save-plot %q", figure.Title)
		}

		r.Logger.Debug("rendered-plot", lager.Data{"title": figure.Title, "path": path})
		paths = append(paths, path)
	}

	return paths, nil
}
