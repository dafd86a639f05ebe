// Package favicon renders the Mushroom Lab site icon set.
//
// # Overview
//
// A single mushroom glyph (an elliptical cap over a rounded stem) is drawn
// at every requested pixel size. Small sizes get a dark outline so the
// silhouette survives on light tabs; large sizes get two eyes instead.
// Sizes of 64 and up add a soft teal ring behind the glyph.
//
// # Quick Start
//
//	cfg := favicon.DefaultConfig()
//	cfg.OutDir = "public/favicon"
//
//	g, err := favicon.NewGenerator(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report, err := g.Run(ctx)
//
// # Outputs
//
// One run writes icon-N.png for every size in [IconSizes], the
// conventional aliases (favicon-16x16.png, android-chrome-512x512.png and
// so on), a multi-resolution favicon.ico, apple-touch-icon.png on a
// rounded dark card, favicon.svg, safari-pinned-tab.svg and
// site.webmanifest. [Artifacts] lists the exact file set.
//
// # Coordinate System
//
// Geometry is defined in a 256x256 reference frame and scaled by
// size/256. Origin is top-left, Y increases down.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive one Info
// record per written file.
package favicon
