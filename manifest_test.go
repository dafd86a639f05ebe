package favicon

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"
)

func TestManifestEncode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IconBase = "https://cdn.example.com/fav/"

	var buf bytes.Buffer
	if err := NewManifest(cfg).Encode(&buf); err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("manifest is not valid JSON: %v\n%s", err, buf.String())
	}
	for _, key := range []string{"name", "short_name", "icons", "theme_color", "background_color", "display"} {
		if _, ok := got[key]; !ok {
			t.Errorf("manifest has no %q key", key)
		}
	}

	var m Manifest
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	want := []ManifestIcon{
		{Src: "https://cdn.example.com/fav/android-chrome-192x192.png", Sizes: "192x192", Type: "image/png"},
		{Src: "https://cdn.example.com/fav/android-chrome-512x512.png", Sizes: "512x512", Type: "image/png"},
	}
	if !slices.Equal(m.Icons, want) {
		t.Errorf("icons = %+v, want %+v", m.Icons, want)
	}
	if m.Name != "Mushroom Lab" || m.ShortName != "MushroomLab" || m.Display != "standalone" {
		t.Errorf("manifest = %+v", m)
	}
	if m.ThemeColor != "#0b0e12" || m.BackgroundColor != "#0b0e12" {
		t.Errorf("colors = %q %q", m.ThemeColor, m.BackgroundColor)
	}
}

func TestManifestIconsAreArtifacts(t *testing.T) {
	artifacts := Artifacts()
	for _, icon := range NewManifest(DefaultConfig()).Icons {
		name := icon.Src[len(DefaultConfig().IconBase)+1:]
		if !slices.Contains(artifacts, name) {
			t.Errorf("manifest icon %q is not generated", name)
		}
	}
}
