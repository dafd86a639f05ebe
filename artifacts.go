package favicon

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Artifact sizes and thresholds.
var (
	// IconSizes are the transparent PNGs written as icon-<size>.png.
	IconSizes = []int{16, 24, 32, 48, 64, 128, 192, 256, 512}

	// ICOSizes are bundled into favicon.ico.
	ICOSizes = []int{16, 24, 32, 48, 64}
)

const (
	// RingMinSize is the smallest icon that gets the accent ring.
	RingMinSize = 64

	// AppleTouchSize is the edge of apple-touch-icon.png.
	AppleTouchSize = 180
)

// Fixed output names.
const (
	ICOName       = "favicon.ico"
	AppleName     = "apple-touch-icon.png"
	SVGName       = "favicon.svg"
	PinnedTabName = "safari-pinned-tab.svg"
	ManifestName  = "site.webmanifest"
)

// alias is a well-known file name copied from an icon-<size>.png.
type alias struct {
	name string
	size int
}

var aliases = []alias{
	{"favicon-16x16.png", 16},
	{"favicon-32x32.png", 32},
	{"android-chrome-192x192.png", 192},
	{"android-chrome-512x512.png", 512},
}

// manifestIcons are the aliases referenced from site.webmanifest.
var manifestIcons = aliases[2:]

// IconName returns the file name of the transparent PNG for size.
func IconName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// Artifacts returns the sorted names of every file a run writes.
func Artifacts() []string {
	names := make([]string, 0, len(IconSizes)+len(aliases)+5)
	for _, size := range IconSizes {
		names = append(names, IconName(size))
	}
	for _, a := range aliases {
		names = append(names, a.name)
	}
	names = append(names, ICOName, AppleName, SVGName, PinnedTabName, ManifestName)
	slices.Sort(names)
	return names
}

// Verify checks that dir holds exactly the artifact set: no file missing,
// no extra regular file.
func Verify(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	var present []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			present = append(present, e.Name())
		}
	}

	want := Artifacts()
	var missing, extra []string
	for _, name := range want {
		if !slices.Contains(present, name) {
			missing = append(missing, name)
		}
	}
	for _, name := range present {
		if !slices.Contains(want, name) {
			extra = append(extra, name)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	return fmt.Errorf("verify %s: missing [%s], unexpected [%s]",
		dir, strings.Join(missing, " "), strings.Join(extra, " "))
}
