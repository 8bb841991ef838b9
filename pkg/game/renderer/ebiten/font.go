package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts creates the font sources from the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	e.sansFontSource = sans
	e.monoFontSource = mono
	return nil
}

// getUIFontSize returns the font size for UI text, scaled with the tile size
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.tileSize) / 32.0
	if size < 10 {
		size = 10
	}
	return size
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	e.refreshFontCache()
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   e.cachedUIFontSize,
		}
	}
	return e.cachedSansFace
}

// getMonoFontFace returns a cached monospace font face for the status panel
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	e.refreshFontCache()
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   e.cachedUIFontSize,
		}
	}
	return e.cachedMonoFace
}

// refreshFontCache drops cached faces when the UI font size changed
func (e *EbitenRenderer) refreshFontCache() {
	if size := e.getUIFontSize(); size != e.cachedUIFontSize {
		e.cachedUIFontSize = size
		e.cachedSansFace = nil
		e.cachedMonoFace = nil
	}
}
