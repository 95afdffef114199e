// Package display implements the debug front end: a pixelgl window showing
// the running game framebuffer alongside a CPU register/disassembly panel.
// Actual pixel rendering is out of scope; the game panel here is driven by
// whatever the caller chooses to paint into its RGBA buffer via DrawPixel.
package display

import (
	"image"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	nesResW float64 = 256
	nesResH float64 = 240
	scale   float64 = 3

	gameW float64 = nesResW * scale
	gameH float64 = nesResH * scale

	screenPosX float64 = 600
	screenPosY float64 = 400

	debugResW float64 = 512
	debugResH float64 = gameH
)

// Display owns the game and debug RGBA buffers, the pixelgl window they're
// drawn into, and the text panels the debug view shows.
type Display struct {
	gameRGBA  *image.RGBA
	debugRGBA *image.RGBA

	window      *pixelgl.Window
	gameMatrix  pixel.Matrix
	debugMatrix pixel.Matrix

	debugAtlas          *text.Atlas
	debugRegText        *text.Text
	debugInstText       *text.Text
	debugControllerText *text.Text

	isDebug bool
}

// New opens a pixelgl window sized for the NES framebuffer, plus an
// optional debug panel to its right.
func New(isDebug bool) *Display {
	rect := image.Rect(0, 0, int(nesResW), int(nesResH))
	gameRGBA := image.NewRGBA(rect)

	rect = image.Rect(0, 0, int(debugResW), int(debugResH))
	debugRGBA := image.NewRGBA(rect)

	screenW := gameW
	if isDebug {
		screenW += debugResW
	}

	cfg := pixelgl.WindowConfig{
		Title:    "nescore",
		Bounds:   pixel.R(0, 0, screenW, gameH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatalf("display: unable to create window: %v", err)
	}

	pic := pixel.PictureDataFromImage(gameRGBA)
	gameMatrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	gameMatrix = gameMatrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	pic = pixel.PictureDataFromImage(debugRGBA)
	debugMatrix := pixel.IM.Moved(pic.Bounds().Center().Add(pixel.V(gameW, 0)))

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)

	return &Display{
		gameRGBA:            gameRGBA,
		debugRGBA:           debugRGBA,
		window:              window,
		gameMatrix:          gameMatrix,
		debugMatrix:         debugMatrix,
		debugAtlas:          atlas,
		debugRegText:        text.New(pixel.V(gameW+8, gameH-40), atlas),
		debugInstText:       text.New(pixel.V(gameW+8, gameH-180), atlas),
		debugControllerText: text.New(pixel.V(gameW+300, gameH-40), atlas),
		isDebug:             isDebug,
	}
}

// Window exposes the underlying pixelgl window so the caller's event loop
// can check Closed() and poll controller input.
func (d *Display) Window() *pixelgl.Window { return d.window }

// DrawPixel sets one pixel of the game framebuffer.
func (d *Display) DrawPixel(x, y int, c color.RGBA) {
	d.gameRGBA.SetRGBA(x, y, c)
}

// WriteRegDebugString replaces the register panel's text.
func (d *Display) WriteRegDebugString(s string) {
	d.debugRegText.Clear()
	d.debugRegText.WriteString(s)
}

// WriteInstDebugString replaces the disassembly panel's text.
func (d *Display) WriteInstDebugString(s string) {
	d.debugInstText.Clear()
	d.debugInstText.WriteString(s)
}

// WriteControllerDebugString replaces the controller-status panel's text.
func (d *Display) WriteControllerDebugString(s string) {
	d.debugControllerText.Clear()
	d.debugControllerText.WriteString(s)
}

// UpdateScreen redraws the game framebuffer and, if enabled, the debug
// panel, then presents the frame.
func (d *Display) UpdateScreen() {
	d.window.Clear(colornames.Black)

	sprite := spriteFrom(d.gameRGBA)
	sprite.Draw(d.window, d.gameMatrix)

	if d.isDebug {
		sprite = spriteFrom(d.debugRGBA)
		sprite.Draw(d.window, d.debugMatrix)
		d.debugRegText.Draw(d.window, pixel.IM)
		d.debugInstText.Draw(d.window, pixel.IM)
		d.debugControllerText.Draw(d.window, pixel.IM)
	}

	d.window.Update()
}

func spriteFrom(img *image.RGBA) *pixel.Sprite {
	pic := pixel.PictureDataFromImage(img)
	return pixel.NewSprite(pic, pic.Bounds())
}
