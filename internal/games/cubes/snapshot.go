package cubes

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAutoplay    GameStateType = "autoplay"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Player      string
	Score       int
	Layout      string // Field in ParseLayout format
	RightBorder int
	Counts      [ColorCount]int
	Cursor      Coord
	Chosen      int // Size of the removable group under the cursor
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.finished:
		state = StateGameOver
	case g.autocompleting:
		state = StateAutoplay
	}

	return Snapshot{
		Tick:        g.tick,
		Player:      g.player,
		Score:       g.score,
		Layout:      g.field.Layout(),
		RightBorder: g.field.RightBorder(),
		Counts:      g.field.counts,
		Cursor:      g.cursor,
		Chosen:      g.chosen.Size(),
		State:       state,
	}
}
