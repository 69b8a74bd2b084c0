package pubsite

import (
	"encoding/xml"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/eringen/pubsite/site"
)

// ImageInfo describes an image asset on disk.
type ImageInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

// ProbeImage reads the dimensions of the image at path. SVG files are read
// through ProbeSVG; raster formats are png, jpeg, gif and webp.
func ProbeImage(path string) (ImageInfo, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ProbeSVG(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return ImageInfo{Path: path, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// ProbeSVG reads the size of an SVG from the width and height attributes of
// its root element, falling back to the viewBox.
func ProbeSVG(path string) (ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, err
	}
	defer f.Close()

	w, h, err := svgSize(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return ImageInfo{Path: path, Format: "svg", Width: w, Height: h}, nil
}

func svgSize(r io.Reader) (int, int, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return 0, 0, fmt.Errorf("no svg element")
		}
		if err != nil {
			return 0, 0, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return 0, 0, fmt.Errorf("root element is <%s>, not <svg>", start.Name.Local)
		}
		var width, height, viewBox string
		for _, at := range start.Attr {
			switch at.Name.Local {
			case "width":
				width = at.Value
			case "height":
				height = at.Value
			case "viewBox":
				viewBox = at.Value
			}
		}
		w, wok := svgLength(width)
		h, hok := svgLength(height)
		if wok && hok {
			return w, h, nil
		}
		if f := strings.Fields(strings.ReplaceAll(viewBox, ",", " ")); len(f) == 4 {
			vw, werr := strconv.ParseFloat(f[2], 64)
			vh, herr := strconv.ParseFloat(f[3], 64)
			if werr == nil && herr == nil {
				return int(vw + 0.5), int(vh + 0.5), nil
			}
		}
		return 0, 0, fmt.Errorf("svg has no usable size")
	}
}

// svgLength parses a user-unit or px length. Percentages and other units
// are rejected.
func svgLength(s string) (int, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return int(v + 0.5), true
}

// AssetCheck is the result of checking one configured asset.
type AssetCheck struct {
	Name    string
	Info    ImageInfo
	Err     error
	Warning string
}

// OK reports whether the asset exists and matches the configuration.
func (c AssetCheck) OK() bool {
	return c.Err == nil && c.Warning == ""
}

// CheckAssets probes the og image and, when enabled, the logo under dir and
// compares the logo with the configured dimensions.
func CheckAssets(cfg *site.Config, dir string) []AssetCheck {
	s := cfg.Site()
	og := AssetCheck{Name: "ogImage"}
	og.Info, og.Err = ProbeImage(filepath.Join(dir, s.OGImage))
	checks := []AssetCheck{og}

	logo := cfg.Logo()
	if !logo.Enable {
		return checks
	}
	lc := AssetCheck{Name: "logo"}
	lc.Info, lc.Err = ProbeImage(filepath.Join(dir, logo.AssetPath()))
	if lc.Err == nil && (lc.Info.Width != logo.Width || lc.Info.Height != logo.Height) {
		lc.Warning = fmt.Sprintf("file is %dx%d, configured %dx%d",
			lc.Info.Width, lc.Info.Height, logo.Width, logo.Height)
	}
	return append(checks, lc)
}
