package classify

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Preprocess converts an interleaved 32x32 RGBA pixel buffer into a
// channel-planar float32 tensor: each sample is scaled to [0,1] and
// standardized with the per-channel mean and std. The alpha channel is
// skipped, no blending. All 1024 values of channel 0 precede channel 1,
// which precede channel 2; pixel order within a plane stays row-major.
func Preprocess(pixels []byte, norm Normalization) ([]float32, error) {
	if len(pixels) != PixelBufferLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBadPixelBuffer, len(pixels), PixelBufferLen)
	}
	for c := range 3 {
		if norm.Std[c] == 0 {
			return nil, fmt.Errorf("%w: channel %d", ErrZeroStd, c)
		}
	}

	out := make([]float32, TensorLen)
	plane := ImageSize * ImageSize
	for c := range 3 {
		base := c * plane
		for i := range plane {
			v := float32(pixels[i*4+c]) / 255.0
			out[base+i] = (v - norm.Mean[c]) / norm.Std[c]
		}
	}
	return out, nil
}

// PixelBuffer resizes an arbitrary decoded image to 32x32 and returns
// its interleaved RGBA bytes, ready for Preprocess.
func PixelBuffer(img image.Image) []byte {
	resized := imaging.Resize(img, ImageSize, ImageSize, imaging.Lanczos)
	return resized.Pix
}
