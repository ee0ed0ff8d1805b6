package highway

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
	"github.com/vovakirdan/tui-rhythm/internal/song"
)

const maxFrames = 100000

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newSongGame(t *testing.T) *Game {
	t.Helper()
	s, err := song.Builtin(song.DefaultID)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultHighwayConfig()
	g := New()
	g.cfgOverride = &cfg
	g.songOverride = &s
	g.Reset(testRuntime())
	return g
}

func newEndlessGame(seed int64) *Game {
	cfg := config.DefaultHighwayConfig()
	g := NewEndless()
	g.cfgOverride = &cfg
	rt := testRuntime()
	rt.Seed = seed
	g.Reset(rt)
	return g
}

// autoplay presses every lane whose lowest note is inside the hit window.
func autoplay(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	for _, n := range g.state.UserNotes {
		if n.Column.IsLane() && g.rules.InHitWindow(n.CY) {
			in.Set(core.LaneActions[n.Column])
		}
	}
	return in
}

func TestRegisteredModes(t *testing.T) {
	if New().ID() != "highway" || NewEndless().ID() != "highway_endless" {
		t.Error("unexpected game IDs")
	}
	if !strings.Contains(NewEndless().Title(), "Endless") {
		t.Errorf("Title() = %q, expected endless title", NewEndless().Title())
	}
}

func TestSongModeAutoplayHitsEverything(t *testing.T) {
	g := newSongGame(t)
	total := g.song.PlayableCount()

	for i := 0; i < maxFrames; i++ {
		if g.Step(autoplay(g)).State.GameOver {
			break
		}
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("song should end once every note is resolved")
	}
	stats := g.Stats()
	if stats.Hits != total {
		t.Errorf("Hits = %d, expected %d", stats.Hits, total)
	}
	if stats.Misses != 0 || stats.MissClicks != 0 {
		t.Errorf("Misses = %d, MissClicks = %d, expected 0", stats.Misses, stats.MissClicks)
	}
	if stats.MaxStreak != total {
		t.Errorf("MaxStreak = %d, expected %d", stats.MaxStreak, total)
	}
	if st.Score < total*5 {
		t.Errorf("Score = %d, expected at least %d", st.Score, total*5)
	}
	if st.Accuracy != 1 {
		t.Errorf("Accuracy = %v, expected 1", st.Accuracy)
	}
	if g.Progress() <= 0 {
		t.Errorf("Progress() = %v, expected > 0", g.Progress())
	}
}

func TestSongModeIdleMissesEverything(t *testing.T) {
	g := newSongGame(t)
	total := g.song.PlayableCount()

	for i := 0; i < maxFrames; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}

	if !g.State().GameOver {
		t.Fatal("song should end after the last note falls out")
	}
	if g.Stats().Misses != total {
		t.Errorf("Misses = %d, expected %d", g.Stats().Misses, total)
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0", g.State().Score)
	}
}

func TestEndlessEndsAfterMaxMisses(t *testing.T) {
	g := newEndlessGame(7)

	for i := 0; i < maxFrames; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}

	if !g.State().GameOver {
		t.Fatal("endless run should end after max_misses")
	}
	if got, expected := g.Stats().Misses, g.cfg.Endless.MaxMisses; got != expected {
		t.Errorf("Misses = %d, expected %d", got, expected)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%37 == 0 {
			inputs[i].Set(core.LaneActions[i%4])
		}
	}

	run := func() Snapshot {
		g := newEndlessGame(99)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: (%d, %d) vs (%d, %d)", snap1.Score, snap1.Tick, snap2.Score, snap2.Tick)
	}
}

func TestStepAdvancesByFrameTime(t *testing.T) {
	g := newSongGame(t)

	// 60 FPS at 7ms per step: 16.67/7 = 2.38 steps per frame.
	steps := 0
	for i := 0; i < 60; i++ {
		steps += g.Step(core.NewInputFrame()).Steps
	}
	if steps != 142 {
		t.Errorf("steps after one second = %d, expected 142", steps)
	}
}

func TestMissClickProducesFeedbackCue(t *testing.T) {
	g := newSongGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionLane2)
	g.Step(in)

	if g.Stats().MissClicks != 1 {
		t.Errorf("MissClicks = %d, expected 1", g.Stats().MissClicks)
	}
	cues := g.DrainCues()
	if len(cues) != 1 || cues[0].Column != rhythm.ColumnRandom {
		t.Fatalf("DrainCues() = %+v, expected one synthetic note", cues)
	}
	if len(g.DrainCues()) != 0 {
		t.Error("DrainCues() should empty the queue")
	}
	if g.State().Accuracy != 0 {
		t.Errorf("Accuracy = %v, expected 0 after a lone miss-click", g.State().Accuracy)
	}
}

func TestPauseStopsTheClock(t *testing.T) {
	g := newSongGame(t)
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()
	if before.Tick != after.Tick || after.State != StatePaused {
		t.Errorf("ticks advanced while paused: %d -> %d", before.Tick, after.Tick)
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	g := newSongGame(t)
	g.SetHighScore(500)

	if got := g.State().HighScore; got != 500 {
		t.Errorf("HighScore = %d, expected 500", got)
	}

	g.Reset(testRuntime())
	if got := g.State().HighScore; got != 500 {
		t.Errorf("HighScore after Reset = %d, expected 500", got)
	}
	if g.State().Score != 0 {
		t.Errorf("Score after Reset = %d, expected 0", g.State().Score)
	}
}

func TestSelectSong(t *testing.T) {
	cfg := config.DefaultHighwayConfig()
	g := New()
	g.cfgOverride = &cfg
	g.SelectSong("twinkle")
	g.Reset(testRuntime())
	if g.SongID() != "twinkle" {
		t.Errorf("SongID() = %q, expected %q", g.SongID(), "twinkle")
	}

	g.SelectSong("no_such_song")
	g.Reset(testRuntime())
	if g.SongID() != SelectedSongID() {
		t.Errorf("SongID() = %q, expected fallback %q", g.SongID(), SelectedSongID())
	}
}

func TestGameOverIgnoresInput(t *testing.T) {
	g := newEndlessGame(3)
	for i := 0; i < maxFrames && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	before := g.Snapshot()

	in := core.NewInputFrame()
	in.Set(core.ActionLane0)
	g.Step(in)

	if after := g.Snapshot(); after.Hash() != before.Hash() {
		t.Error("state changed after game over")
	}
}

func TestRender(t *testing.T) {
	g := newSongGame(t)
	for i := 0; i < 400 && len(g.state.UserNotes) == 0; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.state.UserNotes) == 0 {
		t.Fatal("no note spawned")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Ode to Joy", "Score 0", "x1.00", "Best 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, NoteBody) {
		t.Error("render should draw the falling note")
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("expected too-small message")
	}
}

func TestPitchName(t *testing.T) {
	tests := map[int]string{60: "C4", 69: "A4", 21: "A0", 108: "C8", 43: "G2"}
	for pitch, expected := range tests {
		if got := PitchName(pitch); got != expected {
			t.Errorf("PitchName(%d) = %q, expected %q", pitch, got, expected)
		}
	}
}
