package view

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// Sprite path: x = sin(t*200deg)*150, y = cos(t*110deg)*200 in scene units.
const (
	spriteRateX   = 200.0
	spriteRateY   = 110.0
	spriteRangeX  = 150.0
	spriteRangeY  = 200.0
	jigglePeriod  = 0.1 // Seconds per squash or stretch
	menuTitleText = "menu"
)

// Sprite frames for the squash and stretch jiggle.
var (
	spriteSquash = []string{
		"▄█████▄",
		"▀█████▀",
	}
	spriteStretch = []string{
		" ▄███▄ ",
		" █████ ",
		" ▀███▀ ",
	}
)

// MenuScene is the animated backdrop shown while the maze is not active.
type MenuScene struct {
	elapsed float64
}

// Advance moves the scene clock forward by dt seconds.
func (m *MenuScene) Advance(dt float64) {
	m.elapsed += dt
}

// Reset rewinds the scene clock.
func (m *MenuScene) Reset() {
	m.elapsed = 0
}

// SpriteOffset returns the sprite position in scene units, each axis in
// [-range, range]. Positive y is up.
func (m MenuScene) SpriteOffset() (x, y float64) {
	t := m.elapsed
	x = math.Sin(t*spriteRateX*math.Pi/180) * spriteRangeX
	y = math.Cos(t*spriteRateY*math.Pi/180) * spriteRangeY
	return x, y
}

// Stretched reports which jiggle frame is showing. The timer mirrors every
// period, so the sprite alternates squash and stretch.
func (m MenuScene) Stretched() bool {
	return int(m.elapsed/jigglePeriod)%2 == 1
}

// Render draws the title and the sprite, filling dst completely.
func (m MenuScene) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	dst.DrawTextCentered(1, menuTitleText, core.ColorTitle)

	frame := spriteSquash
	if m.Stretched() {
		frame = spriteStretch
	}
	fw, fh := len([]rune(frame[0])), len(frame)

	// Map scene units onto the free area below the title.
	ox, oy := m.SpriteOffset()
	halfW := float64(max(w-fw, 0)) / 2
	top := 3
	halfH := float64(max(h-top-fh, 0)) / 2

	x := int(math.Round(halfW + ox/spriteRangeX*halfW))
	y := top + int(math.Round(halfH-oy/spriteRangeY*halfH))

	for row, line := range frame {
		dst.DrawText(x, y+row, line, core.ColorSprite)
	}
}
