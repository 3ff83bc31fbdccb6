package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"pool-scene/internal/scene"
)

// readImage reads, sniffs and decodes the image at file. If maxSize > 0 and either
// dimension exceeds it, the image is downscaled to fit, keeping its aspect ratio.
func readImage(file string, maxSize int) (image.Image, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if _, err := sniffImage(data); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return fitImage(img, maxSize), nil
}

func fitImage(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// composeStrip stacks cube faces vertically in face order, each scaled to a square of
// the first face's width.
func composeStrip(faces [scene.FaceCount]image.Image) (image.Image, error) {
	edge := faces[0].Bounds().Dx()
	if edge <= 0 {
		return nil, fmt.Errorf("empty cube face")
	}
	strip := image.NewRGBA(image.Rect(0, 0, edge, edge*scene.FaceCount))
	for i, face := range faces {
		dst := image.Rect(0, i*edge, edge, (i+1)*edge)
		if face.Bounds().Dx() == edge && face.Bounds().Dy() == edge {
			xdraw.Draw(strip, dst, face, face.Bounds().Min, xdraw.Src)
			continue
		}
		xdraw.CatmullRom.Scale(strip, dst, face, face.Bounds(), xdraw.Src, nil)
	}
	return strip, nil
}
