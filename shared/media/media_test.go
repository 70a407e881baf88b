package media_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"haven/shared/media"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodedImage(t *testing.T, width, height int, format imaging.Format) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 200, G: 120, B: 40, A: 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))

	return buf.Bytes()
}

func decodedWidth(t *testing.T, data []byte) int {
	t.Helper()

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)

	return cfg.Width
}

func TestDownscale(t *testing.T) {
	t.Run("wide jpeg is resized", func(t *testing.T) {
		data := encodedImage(t, 400, 200, imaging.JPEG)

		out, err := media.Downscale(data, media.ContentTypeJPEG, 100)

		require.NoError(t, err)
		assert.Equal(t, 100, decodedWidth(t, out))
	})

	t.Run("narrow png is untouched", func(t *testing.T) {
		data := encodedImage(t, 80, 40, imaging.PNG)

		out, err := media.Downscale(data, media.ContentTypePNG, 100)

		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("unsupported encoder passes through", func(t *testing.T) {
		data := []byte("not really webp")

		out, err := media.Downscale(data, media.ContentTypeWebP, 100)

		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("zero max width disables resizing", func(t *testing.T) {
		data := encodedImage(t, 400, 200, imaging.JPEG)

		out, err := media.Downscale(data, media.ContentTypeJPEG, 0)

		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("corrupt jpeg fails", func(t *testing.T) {
		_, err := media.Downscale([]byte("broken"), media.ContentTypeJPEG, 100)

		assert.Error(t, err)
	})
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "abc.jpg", media.ObjectName("abc", "Photo.JPG"))
	assert.Equal(t, "abc", media.ObjectName("abc", "noext"))
}
