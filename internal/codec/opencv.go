//go:build opencv

package codec

import (
	"bytes"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// opencvCodec delegates to OpenCV through gocv. Build with -tags opencv;
// it then outranks the native backend.
type opencvCodec struct {
	down gocv.InterpolationFlags
	up   gocv.InterpolationFlags
}

func init() {
	Register("opencv", 10, newOpenCV)
}

func newOpenCV(filters Filters) (Codec, error) {
	down, err := interpolation(filters.Down)
	if err != nil {
		return nil, err
	}
	up, err := interpolation(filters.Up)
	if err != nil {
		return nil, err
	}
	return &opencvCodec{down: down, up: up}, nil
}

func interpolation(f Filter) (gocv.InterpolationFlags, error) {
	switch f {
	case FilterArea:
		return gocv.InterpolationArea, nil
	case FilterLanczos:
		return gocv.InterpolationLanczos4, nil
	default:
		return 0, fmt.Errorf("filter %q not supported by opencv backend", f)
	}
}

func (c *opencvCodec) Name() string { return "opencv" }

func (c *opencvCodec) Extensions() []string {
	return []string{".jpg", ".jpeg", ".jpe", ".png", ".bmp", ".tif", ".tiff", ".webp"}
}

func (c *opencvCodec) Decode(data []byte) (image.Image, string, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, "", ErrUnsupportedFormat
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, "", fmt.Errorf("failed to convert Mat to image: %w", err)
	}

	format := "unknown"
	if _, f, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		format = f
	}
	return img, format, nil
}

func (c *opencvCodec) EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality < 0 {
		quality = 0
	} else if quality > 100 {
		quality = 100
	}

	mat, err := gocv.ImageToMatRGB(flatten(img))
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer mat.Close()

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{int(gocv.IMWriteJpegQuality), quality})
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	return bytes.Clone(buf.GetBytes()), nil
}

func (c *opencvCodec) Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	src, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	flag := c.down
	if enlarges(img.Bounds(), width, height) {
		flag = c.up
	}
	gocv.Resize(src, &dst, image.Point{X: width, Y: height}, 0, 0, flag)
	return dst.ToImage()
}
