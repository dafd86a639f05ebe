// Package filter provides the pixel filters used to finish rendered icons:
//   - Gaussian blur (separable, with a kernel cache)
//   - Drop shadow (alpha extract + blur + colorize + composite)
//   - Compositing helpers (Over, Mix, ReplaceAlpha)
//
// All filters operate on *gg.Pixmap values holding premultiplied RGBA
// bytes, the format the gg rasterizer writes.
package filter
