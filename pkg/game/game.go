// Package game is the playable arcade cabinet: an Ebitengine shell around
// the day 13 game program with keyboard control, an autopilot and a score
// screen.
package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/zephyrix/advent2019/pkg/arcade"
	"github.com/zephyrix/advent2019/pkg/intcode"
	"github.com/zephyrix/advent2019/pkg/logger"
)

// The game program always draws a 37x20 board.
const (
	boardWidth  = 37
	boardHeight = 20
	tileSize    = 16
	hudHeight   = 24

	screenWidth  = boardWidth * tileSize
	screenHeight = boardHeight*tileSize + hudHeight
)

var (
	backgroundColor = color.RGBA{0x0F, 0x38, 0x0F, 0xFF}
	wallColor       = color.RGBA{0x8B, 0xAC, 0x0F, 0xFF}
	blockColor      = color.RGBA{0x30, 0x62, 0x30, 0xFF}
	paddleColor     = color.RGBA{0x9B, 0xBC, 0x0F, 0xFF}
	ballColor       = color.RGBA{0x9B, 0xBC, 0x0F, 0xFF}
	textColor       = color.White

	defaultFace = text.NewGoXFace(basicfont.Face7x13)
)

type stage int

const (
	stageTitle stage = iota
	stagePlaying
	stageScore
)

// Options configures the cabinet shell.
type Options struct {
	// Autopilot keeps the paddle under the ball without player input.
	Autopilot bool
	// Speed is the number of screen frames per game frame; higher is
	// slower. Zero means 1.
	Speed int
	// ShowFPS displays the frame rate in the HUD.
	ShowFPS bool
}

// Game implements the ebiten.Game interface.
type Game struct {
	program intcode.Program
	cabinet *arcade.Cabinet
	stage   stage

	autopilot    bool
	speed        int
	showFPS      bool
	frameCounter int
}

// New creates the cabinet shell on the title screen.
func New(program intcode.Program, opts Options) *Game {
	speed := opts.Speed
	if speed < 1 {
		speed = 1
	}
	return &Game{
		program:   program,
		stage:     stageTitle,
		autopilot: opts.Autopilot,
		speed:     speed,
		showFPS:   opts.ShowFPS,
	}
}

// start boots a fresh cabinet with quarters inserted and waits for the
// first full board before switching to the playing stage.
func (g *Game) start() error {
	cabinet, err := arcade.NewFreePlay(g.program)
	if err != nil {
		return err
	}
	if err := cabinet.LoadScreen(boardWidth, boardHeight); err != nil {
		return err
	}

	logger.Get().Debug("game board loaded", "blocks", cabinet.Screen.CountTiles(arcade.TileBlock))

	g.cabinet = cabinet
	g.stage = stagePlaying
	g.frameCounter = 0
	return nil
}

// Update advances the game one screen frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showFPS = !g.showFPS
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && g.speed > 1 {
		g.speed--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.speed++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		g.autopilot = !g.autopilot
	}

	switch g.stage {
	case stageTitle, stageScore:
		if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
			return g.start()
		}
		return nil
	default:
		return g.updatePlaying()
	}
}

func (g *Game) updatePlaying() error {
	if g.autopilot {
		g.cabinet.Autopilot()
	} else {
		switch {
		case ebiten.IsKeyPressed(ebiten.KeyA):
			g.cabinet.SetJoystick(arcade.JoystickLeft)
		case ebiten.IsKeyPressed(ebiten.KeyD):
			g.cabinet.SetJoystick(arcade.JoystickRight)
		default:
			g.cabinet.SetJoystick(arcade.JoystickNeutral)
		}
	}

	g.frameCounter++
	if g.frameCounter < g.speed {
		return nil
	}
	g.frameCounter = 0

	if err := g.cabinet.WaitFrame(); err != nil {
		if intcode.HasType(err, intcode.ErrorHalted) {
			logger.Get().Info("game over", "score", g.cabinet.Score(), "won", g.cabinet.Won())
			g.stage = stageScore
			return nil
		}
		return err
	}
	return nil
}

// Draw renders the current stage.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.stage {
	case stageTitle:
		g.drawCenteredText(screen, "PRESS SPACE")
	case stagePlaying:
		g.drawBoard(screen)
		g.drawHUD(screen)
	case stageScore:
		message := "YOU LOST :("
		if g.cabinet.Won() {
			message = "YOU WON :)"
		}
		g.drawCenteredText(screen, fmt.Sprintf("%s\n\nYOUR SCORE: %d\n\nPRESS SPACE", message, g.cabinet.Score()))
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	for y := int64(0); y < boardHeight; y++ {
		for x := int64(0); x < boardWidth; x++ {
			px := float32(x * tileSize)
			py := float32(y*tileSize + hudHeight)

			switch g.cabinet.Screen.Tile(arcade.Point{X: x, Y: y}) {
			case arcade.TileWall:
				vector.DrawFilledRect(screen, px, py, tileSize, tileSize, wallColor, false)
			case arcade.TileBlock:
				vector.DrawFilledRect(screen, px+1, py+2, tileSize-2, tileSize-4, blockColor, false)
			case arcade.TilePaddle:
				vector.StrokeLine(screen, px, py+tileSize/2, px+tileSize, py+tileSize/2, 4, paddleColor, false)
			case arcade.TileBall:
				vector.DrawFilledCircle(screen, px+tileSize/2, py+tileSize/2, tileSize/2-2, ballColor, true)
			}
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("SCORE %04d   SPEED %02d", g.cabinet.Score(), g.speed)
	if g.autopilot {
		hud += "   AUTO"
	}
	if g.showFPS {
		hud += fmt.Sprintf("   FPS %02.0f", ebiten.ActualFPS())
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 5)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, hud, defaultFace, op)
}

func (g *Game) drawCenteredText(screen *ebiten.Image, message string) {
	w, h := text.Measure(message, defaultFace, defaultFace.Metrics().HLineGap+defaultFace.Metrics().HAscent+defaultFace.Metrics().HDescent)

	op := &text.DrawOptions{}
	op.GeoM.Translate((screenWidth-w)/2, (screenHeight-h)/2)
	op.ColorScale.ScaleWithColor(textColor)
	op.LineSpacing = defaultFace.Metrics().HLineGap + defaultFace.Metrics().HAscent + defaultFace.Metrics().HDescent
	text.Draw(screen, message, defaultFace, op)
}

// Layout returns the fixed virtual screen size; Ebitengine scales it to the
// window with letterboxing.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the window and plays the game program until the player quits.
func Run(program intcode.Program, opts Options) error {
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("Advent of Code 2019 Arcade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(New(program, opts)); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
