package systems

import (
	"math"
	"testing"

	"github.com/pixelbeak/flappy/components"
)

func TestUpdateScoreAccumulatesAndTracksBest(t *testing.T) {
	e := newTestECS(false, false)
	setTestDelta(e, 0.1)

	entry := e.World.Entry(e.World.Create(components.Score))
	components.Score.SetValue(entry, components.ScoreData{Best: 0.25})

	// Two ticks: still behind the record.
	UpdateScore(e)
	UpdateScore(e)
	score := components.Score.Get(entry)
	if math.Abs(score.Elapsed-0.2) > 1e-12 {
		t.Errorf("Elapsed = %v, expected 0.2", score.Elapsed)
	}
	if score.NewBest {
		t.Error("record must not flip before it is beaten")
	}

	// Third tick passes the record.
	UpdateScore(e)
	if !score.NewBest {
		t.Error("expected NewBest once Elapsed exceeds Best")
	}
	if score.Best != score.Elapsed {
		t.Errorf("Best = %v, expected it to track Elapsed (%v)", score.Best, score.Elapsed)
	}
}

func TestUpdateScoreWithoutScoreEntity(t *testing.T) {
	e := newTestECS(false, false)
	setTestDelta(e, 0.1)

	// No score entity in menu or game-over scenes; must be a no-op.
	UpdateScore(e)
}
