package ebiten

import "image/color"

// Color palette for the farm
var (
	colorGrass       = color.RGBA{92, 140, 64, 255}   // Untouched field
	colorGrassBlade  = color.RGBA{70, 115, 48, 255}   // Darker grass flecks
	colorSoil        = color.RGBA{139, 94, 60, 255}   // Hoed earth
	colorFurrow      = color.RGBA{110, 72, 44, 255}   // Furrow lines
	colorWetSoil     = color.RGBA{92, 60, 38, 255}    // Watered earth
	colorWetFurrow   = color.RGBA{70, 45, 28, 255}    // Watered furrows
	colorSprout      = color.RGBA{120, 200, 80, 255}  // Young crop
	colorWheat       = color.RGBA{232, 194, 80, 255}  // Ripe wheat
	colorWheatStalk  = color.RGBA{180, 150, 60, 255}  // Wheat stalks
	colorCursor      = color.RGBA{255, 255, 255, 255} // Tile highlight (alpha pulses)
	colorFarmerBody  = color.RGBA{60, 90, 170, 255}   // Overalls
	colorFarmerSkin  = color.RGBA{240, 200, 160, 255} // Face and hands
	colorFarmerHat   = color.RGBA{200, 160, 70, 255}  // Straw hat
	colorFarmerEye   = color.RGBA{30, 30, 30, 255}    // Eyes show the facing
	colorText        = color.RGBA{240, 240, 225, 255} // UI text
	colorSubtle      = color.RGBA{190, 200, 170, 255} // Secondary UI text
	colorPanelBg     = color.RGBA{20, 28, 16, 200}    // Semi-transparent panel
	colorPanelBorder = color.RGBA{120, 150, 90, 255}  // Panel outline
)

// UI layout
const (
	baseFontSize = 14.0
	panelPadding = 10
	panelMargin  = 12
	lineSpacing  = 1.4
)

// Cursor pulse
const (
	cursorPulsePeriod = 1200.0 // milliseconds
	cursorMinAlpha    = 0.35
	cursorMaxAlpha    = 0.9
)
