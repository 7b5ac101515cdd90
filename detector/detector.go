// Package detector finds faces in camera frames so particles can be spawned around them.
package detector

import (
	"errors"
	"fmt"

	pigo "github.com/esimov/pigo/core"
)

// ErrEmptyCascade is returned when no cascade data is supplied.
var ErrEmptyCascade = errors.New("detector: empty cascade file")

// Point is the center of a detected face, in frame coordinates.
type Point struct {
	X, Y  float64
	Scale float64
	Score float64
}

// Detector runs the pigo face classifier over grayscale frames.
type Detector struct {
	classifier *pigo.Pigo

	MinSize  int
	MaxSize  int
	MinScore float64
	IoU      float64
}

// New unpacks the facefinder cascade.
func New(cascade []byte) (d *Detector, err error) {
	if len(cascade) == 0 {
		return nil, ErrEmptyCascade
	}
	// The cascade parser indexes into the buffer without bounds checks.
	defer func() {
		if r := recover(); r != nil {
			d, err = nil, fmt.Errorf("detector: malformed cascade file: %v", r)
		}
	}()

	p := pigo.NewPigo()
	// Unpack the binary file. This will return the number of cascade trees,
	// the tree depth, the threshold and the prediction from tree's leaf nodes.
	classifier, err := p.Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("detector: unpacking the facefinder cascade: %w", err)
	}

	return &Detector{
		classifier: classifier,
		MinSize:    100,
		MaxSize:    1200,
		MinScore:   5,
		IoU:        0.1,
	}, nil
}

// Detect runs the cluster detection over a grayscale frame
// and returns the centers of the faces scoring above MinScore.
func (d *Detector) Detect(pixels []uint8, width, height int) []Point {
	if len(pixels) < width*height || width <= 0 || height <= 0 {
		return nil
	}
	cParams := pigo.CascadeParams{
		MinSize:     d.MinSize,
		MaxSize:     d.MaxSize,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   height,
			Cols:   width,
			Dim:    width,
		},
	}

	// Run the classifier over the obtained leaf nodes and return the detection results.
	// The result contains quadruplets representing the row, column, scale and detection score.
	dets := d.classifier.RunCascade(cParams, 0.0)

	// Calculate the intersection over union (IoU) of two clusters.
	dets = d.classifier.ClusterDetections(dets, d.IoU)

	return filter(dets, d.MinScore)
}

func filter(dets []pigo.Detection, minScore float64) []Point {
	var points []Point
	for _, det := range dets {
		if float64(det.Q) < minScore {
			continue
		}
		points = append(points, Point{
			X:     float64(det.Col),
			Y:     float64(det.Row),
			Scale: float64(det.Scale),
			Score: float64(det.Q),
		})
	}
	return points
}

// Grayscale converts packed RGBA pixels, as returned by a canvas, to luma values.
func Grayscale(rgba []uint8, width, height int) []uint8 {
	n := width * height
	if n <= 0 || len(rgba) < n*4 {
		return nil
	}
	gray := make([]uint8, n)
	for i := 0; i < n; i++ {
		r, g, b := float64(rgba[i*4]), float64(rgba[i*4+1]), float64(rgba[i*4+2])
		gray[i] = uint8(0.299*r + 0.587*g + 0.114*b)
	}
	return gray
}

// Scale maps points from a srcW x srcH frame onto a dstW x dstH surface.
func Scale(points []Point, srcW, srcH, dstW, dstH int) []Point {
	if srcW <= 0 || srcH <= 0 {
		return nil
	}
	sx := float64(dstW) / float64(srcW)
	sy := float64(dstH) / float64(srcH)

	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X * sx, Y: p.Y * sy, Scale: p.Scale * sx, Score: p.Score}
	}
	return out
}
