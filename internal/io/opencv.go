package io

import (
	"fmt"

	"gocv.io/x/gocv"

	"image-transform-pipeline/internal/core"
)

// opencvCodec reads and writes files through OpenCV
type opencvCodec struct{}

func (opencvCodec) name() string { return BackendOpenCV }

func (opencvCodec) decode(path string, channels int) (*core.ImageBuffer, error) {
	flag := gocv.IMReadColor
	if channels == 1 {
		flag = gocv.IMReadGrayScale
	}

	mat := gocv.IMRead(path, flag)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("opencv could not decode file")
	}

	if channels == 3 {
		rgb := gocv.NewMat()
		defer rgb.Close()
		// OpenCV stores color samples as BGR
		gocv.CvtColor(mat, &rgb, gocv.ColorBGRToRGB)
		return core.NewImageBuffer(rgb.Cols(), rgb.Rows(), 3, rgb.ToBytes())
	}
	return core.NewImageBuffer(mat.Cols(), mat.Rows(), 1, mat.ToBytes())
}

func (opencvCodec) encode(buf *core.ImageBuffer, path string) error {
	matType := gocv.MatTypeCV8UC1
	if buf.Channels() == 3 {
		matType = gocv.MatTypeCV8UC3
	}

	mat, err := gocv.NewMatFromBytes(buf.Height(), buf.Width(), matType, buf.Samples())
	if err != nil {
		return err
	}
	defer mat.Close()

	if buf.Channels() == 3 {
		bgr := gocv.NewMat()
		defer bgr.Close()
		gocv.CvtColor(mat, &bgr, gocv.ColorRGBToBGR)
		if !gocv.IMWrite(path, bgr) {
			return fmt.Errorf("opencv could not encode file")
		}
		return nil
	}

	if !gocv.IMWrite(path, mat) {
		return fmt.Errorf("opencv could not encode file")
	}
	return nil
}
