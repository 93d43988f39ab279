package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/clst"
	"github.com/younwookim/clst/internal/application/state"
	"github.com/younwookim/clst/internal/domain/entity"
	"github.com/younwookim/clst/internal/infrastructure/level"
)

// Colors for rendering
var (
	colorBG      = colornames.Midnightblue
	colorWall    = colornames.Slategray
	colorLedge   = colornames.Goldenrod
	colorMover   = colornames.Lightsteelblue
	colorBody    = colornames.Peachpuff
	colorHitbox  = colornames.Red
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// camera returns the top-left world pixel shown on screen, centred on the
// actor and clamped to the stage
func (p *Playing) camera() (int, int) {
	a := p.engine.Actor(p.handle)
	camX := a.X + 4 - p.screenW/2
	camY := a.Y + 4 - p.screenH/2

	maxCamX := p.grid.PixelWidth() - p.screenW
	maxCamY := p.grid.PixelHeight() - p.screenH
	camX = clamp(camX, 0, maxCamX)
	camY = clamp(camY, 0, maxCamY)
	return camX, camY
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw renders the scene
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	p.drawMovers(screen, camX, camY)
	p.drawActor(screen, camX, camY)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress P to resume")
	case state.StateReplayDone:
		p.drawOverlay(screen, "REPLAY DONE\n\nPress R to watch again")
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	ts := p.grid.TileSize
	startTileX := camX / ts
	startTileY := camY / ts
	endTileX := (camX+p.screenW)/ts + 1
	endTileY := (camY+p.screenH)/ts + 1

	for ty := startTileY; ty <= endTileY && ty < p.grid.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.grid.Width; tx++ {
			x := float32(tx*ts - camX)
			y := float32(ty*ts - camY)
			switch p.grid.Tile(tx, ty) {
			case level.TileSolid:
				vector.FillRect(screen, x, y, float32(ts), float32(ts), colorWall, false)
			case level.TileOneWay:
				vector.FillRect(screen, x, y, float32(ts), 2, colorLedge, false)
			}
		}
	}
}

func (p *Playing) drawMovers(screen *ebiten.Image, camX, camY int) {
	for _, m := range p.movers {
		r := m.Rect()
		vector.FillRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H), colorMover, false)
	}
}

func (p *Playing) drawActor(screen *ebiten.Image, camX, camY int) {
	a := p.engine.Actor(p.handle)
	hairColor := clst.HairColor(a, p.settings.DisableFlashing)

	// Tail first so the head node is drawn on top
	for i := entity.HairCount - 1; i >= 0; i-- {
		n := a.Hair[i]
		size := float32(3 - i/2)
		hx := float32(n.X) - float32(camX) - size/2
		hy := float32(n.Y) - float32(camY) - size/2
		vector.FillRect(screen, hx, hy, size, size, hairColor, false)
	}

	x, y, w, h := a.Hitbox.WorldRect(a.X, a.Y, 0, 0)
	vector.FillRect(screen, float32(x-camX), float32(y-camY), float32(w), float32(h), colorBody, false)

	if p.showHitbox {
		vector.StrokeRect(screen, float32(x-camX), float32(y-camY), float32(w), float32(h), 1, colorHitbox, false)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	a := p.engine.Actor(p.handle)
	text := fmt.Sprintf("%s  spr:%d  dash:%d\nspd %.2f,%.2f  t:%d  in:%08b",
		p.state, a.Sprite, a.DashCharges, a.Speed.X, a.Speed.Y, p.ticks, uint8(p.lastInput))
	if p.replayer != nil {
		text += fmt.Sprintf("\nreplay %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	} else if p.recorder != nil {
		text += fmt.Sprintf("\nrec %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}
