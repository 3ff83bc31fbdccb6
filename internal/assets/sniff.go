package assets

import (
	"bytes"
	"fmt"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

// glbType is binary glTF, which filetype does not know out of the box.
var glbType = filetype.NewType("glb", "model/gltf-binary")

func init() {
	filetype.AddMatcher(glbType, func(buf []byte) bool {
		return len(buf) >= 12 && bytes.Equal(buf[:4], []byte("glTF"))
	})
}

// imageKinds are the texture formats the decoder has registered.
var imageKinds = map[string]bool{
	"jpg":  true,
	"png":  true,
	"webp": true,
	"bmp":  true,
}

// sniffImage returns the image kind of buf, or an error if it is not a supported image.
func sniffImage(buf []byte) (string, error) {
	kind, err := filetype.Match(buf)
	if err != nil {
		return "", err
	}
	if kind == types.Unknown || !imageKinds[kind.Extension] {
		return "", fmt.Errorf("unsupported image type %q", describe(kind))
	}
	return kind.Extension, nil
}

// sniffModel returns "glb" for binary glTF or "gltf" for a JSON glTF document.
func sniffModel(buf []byte) (string, error) {
	kind, err := filetype.Match(buf)
	if err != nil {
		return "", err
	}
	if kind == glbType {
		return kind.Extension, nil
	}
	trimmed := bytes.TrimLeft(buf, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' && bytes.Contains(buf, []byte(`"asset"`)) {
		return "gltf", nil
	}
	return "", fmt.Errorf("unsupported model type %q", describe(kind))
}

func describe(kind types.Type) string {
	if kind == types.Unknown {
		return "unknown"
	}
	return kind.MIME.Value
}
