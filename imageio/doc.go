// Package imageio adapts the standard library's image types
// (*image.Gray, *image.NRGBA, *image.Alpha) onto morph.Read2D,
// morph.Write2D and morph.MaskRead2D, using golang.org/x/image/draw for
// color-model conversion, so
// that morph's filters can be driven straight off a decoded PNG/JPEG/GIF
// without morph itself ever importing the image package.
package imageio
