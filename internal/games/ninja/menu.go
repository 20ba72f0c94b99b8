package ninja

import (
	"strings"
	"time"
	"unicode"

	"github.com/vovakirdan/ninja-killers/internal/core"
	"github.com/vovakirdan/ninja-killers/internal/leaderboard"
)

// maxNameLen is the width of the name field in runes.
const maxNameLen = 16

func trimName(s string) string {
	return strings.TrimSpace(s)
}

// loadAssets loads the sprite sheet and moves on to the menu.
func loadAssets(g *Game, _ core.InputFrame, _ time.Duration) {
	tex, err := LoadTextures(assetsPath)
	if err != nil {
		g.logger().Warn("using embedded sprites", "err", err)
		tex = DefaultTextures()
	}
	g.res.Textures = tex
	g.requestState(StateMenu)
}

// menuInput edits the name field and starts a run on Confirm.
func menuInput(g *Game, in core.InputFrame, _ time.Duration) {
	for _, r := range in.Text {
		if len(g.res.PlayerName) >= maxNameLen {
			break
		}
		if unicode.IsPrint(r) {
			g.res.PlayerName = append(g.res.PlayerName, r)
		}
	}
	if in.Has(core.ActionBackspace) && len(g.res.PlayerName) > 0 {
		g.res.PlayerName = g.res.PlayerName[:len(g.res.PlayerName)-1]
	}
	if in.Has(core.ActionConfirm) {
		g.requestState(StatePlaying)
	}
}

// finishLevel records the run and clears the arena.
func finishLevel(g *Game) {
	name := g.res.PlayerNameOrDefault()
	score := g.res.Score
	g.res.LastRank = g.board.AddScore(name, score)
	g.res.runs = append(g.res.runs, core.RunRecord{Player: name, Score: score})
	g.logger().Info("run finished",
		"player", name,
		"score", score,
		"rank", g.res.LastRank,
		"best", g.board.Top().Score,
		"kills", g.res.Kills,
	)

	g.res.Score = 0
	g.res.Paused = false
	g.res.SpawnTimer.Reset()
	despawn(g.world, collect(g.world, g.q.runEnts))
}

// menuTitle is the label of the start button.
func (g *Game) menuTitle() string {
	if g.res.LastDeath == "" {
		return "Play"
	}
	return "Restart"
}

// visibleScores returns the leaderboard rows shown in the menu.
func (g *Game) visibleScores() []leaderboard.Entry {
	return g.board.Visible()
}
