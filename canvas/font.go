package canvas

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelSize = 15
	panelSize = 14
)

// loadFace parses the embedded Go Regular font at size.
func loadFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "canvas: parse font")
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// lineHeight returns the distance between baselines for face.
func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
