package ninja

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// Render draws the current state onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		hint := fmt.Sprintf("Need %dx%d", minArenaW, minArenaH+g.cfg.Arena.HUDRows)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	switch g.state {
	case StateLoading:
		dst.DrawTextCentered(dst.Height()/2, "Loading...")
	case StateMenu:
		g.renderMenu(dst)
	case StatePlaying:
		g.renderHUD(dst)
		g.renderWorld(dst)
		if g.res.Paused {
			drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.res.Score), core.ColorBrightWhite)

	lvl := g.res.Level
	levelText := fmt.Sprintf("Level: %d, Exp: %d/%d", lvl.Value, lvl.Exp, lvl.ExpMax)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if g.cfg.Arena.HUDRows > 1 {
		dst.DrawHLine(0, g.offsetY-1, dst.Width(), '─')
	}
}

func (g *Game) renderWorld(dst *core.Screen) {
	if g.res.Textures == nil {
		return
	}
	for _, q := range g.q.layers {
		q.Each(g.world, func(entry *donburi.Entry) {
			sp := Sprite.Get(entry)
			rows, color, ok := g.res.Textures.Frame(sp.Key, sp.Frame)
			if !ok {
				return
			}
			g.drawSprite(dst, Transform.Get(entry).Pos, rows, color)
		})
	}
}

// drawSprite centres rows on pos. Spaces are transparent and cells
// outside the arena are clipped.
func (g *Game) drawSprite(dst *core.Screen, pos core.Vec2, rows []string, c core.Color) {
	cx := int(math.Floor(pos.X))
	cy := int(math.Floor(pos.Y))
	top := cy - len(rows)/2
	aw, ah := int(g.res.Arena.Width), int(g.res.Arena.Height)

	for dy, row := range rows {
		y := top + dy
		if y < 0 || y >= ah {
			continue
		}
		left := cx - utf8.RuneCountInString(row)/2
		i := 0
		for _, r := range row {
			x := left + i
			i++
			if r == ' ' || x < 0 || x >= aw {
				continue
			}
			dst.SetColored(g.offsetX+x, g.offsetY+y, r, c)
		}
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	y := max(1, h/2-10)

	dst.DrawTextCenteredColored(y, "N I N J A   K I L L E R S", core.ColorBrightRed)
	y += 2
	dst.DrawTextCenteredColored(y, fmt.Sprintf("[ %s ]", g.menuTitle()), core.ColorBrightGreen)
	y++
	if g.res.LastDeath != "" {
		y++
		dst.DrawTextCenteredColored(y, g.res.LastDeath, core.ColorYellow)
		if g.res.LastRank > 0 {
			y++
			dst.DrawTextCentered(y, fmt.Sprintf("You placed #%d", g.res.LastRank))
		}
	}

	y += 2
	field := string(g.res.PlayerName)
	if len(g.res.PlayerName) < maxNameLen {
		field += "_"
	}
	dst.DrawTextCentered(y, fmt.Sprintf("Name: %-*s", maxNameLen, field))

	y += 2
	dst.DrawTextCenteredColored(y, "TOP 10", core.ColorBrightCyan)
	y++
	entries := g.visibleScores()
	if len(entries) == 0 {
		dst.DrawTextCenteredColored(y, "No scores yet", core.ColorGray)
		y++
	}
	for i, e := range entries {
		if y >= h-2 {
			break
		}
		dst.DrawTextCentered(y, fmt.Sprintf("%2d. %-*s %6d", i+1, maxNameLen, e.Name, e.Score))
		y++
	}

	dst.DrawTextCenteredColored(h-2, "Move: WASD/Arrows  Shuriken: Space  Grenade: R  Missile: E", core.ColorGray)
	dst.DrawTextCenteredColored(h-1, "Enter: play  P/Esc: pause  Tab: scores  Ctrl+C: quit", core.ColorGray)
}

// drawCenteredBox draws a bordered message box in the middle of dst.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), c)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
