package media

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypeJPG  = "image/jpg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
	ContentTypeWebP = "image/webp"

	jpegQuality = 85
)

// Downscale shrinks images wider than maxWidth, keeping the aspect ratio.
// Formats the encoder cannot write (webp, gif animations) and images already
// within bounds are returned unchanged.
func Downscale(data []byte, contentType string, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		return data, nil
	}

	format, ok := encodeFormat(contentType)
	if !ok {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() <= maxWidth {
		return data, nil
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

// ObjectName builds a collision free object name keeping the original extension.
func ObjectName(id, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))

	return id + ext
}

func encodeFormat(contentType string) (imaging.Format, bool) {
	switch strings.ToLower(contentType) {
	case ContentTypeJPEG, ContentTypeJPG:
		return imaging.JPEG, true
	case ContentTypePNG:
		return imaging.PNG, true
	default:
		return 0, false
	}
}
