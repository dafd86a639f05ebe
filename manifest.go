package favicon

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Manifest is the web app manifest written to site.webmanifest.
type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []ManifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

// ManifestIcon references one icon file from the manifest.
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// NewManifest builds the manifest for cfg, pointing at the Android icons.
func NewManifest(cfg Config) Manifest {
	m := Manifest{
		Name:            cfg.Name,
		ShortName:       cfg.ShortName,
		ThemeColor:      cfg.ThemeColor,
		BackgroundColor: cfg.BackgroundColor,
		Display:         cfg.Display,
	}
	for _, a := range manifestIcons {
		m.Icons = append(m.Icons, ManifestIcon{
			Src:   strings.TrimSuffix(cfg.IconBase, "/") + "/" + a.name,
			Sizes: fmt.Sprintf("%dx%d", a.size, a.size),
			Type:  "image/png",
		})
	}
	return m
}

// Encode writes m as two-space indented JSON.
func (m Manifest) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
