// Package cubes implements the cubes puzzle: remove connected groups of
// same-colored cubes, let the rest fall, and squeeze out empty columns
// until no group of two or more is left.
package cubes

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/records"
)

// Game is one play session: a field, the player and their score.
// It also implements the platform game interface (see play.go).
type Game struct {
	size     int
	settings config.Settings
	field    *Field
	player   string
	score    int

	seed     int64
	rng      *rand.Rand
	records  *records.Table
	logger   *log.Logger
	onFinish func(*Game)

	// Screen dimensions
	screenW int
	screenH int

	// Presentation state
	tick           uint64
	cursor         Coord
	chosen         Group
	finished       bool
	autocompleting bool
	resultSaved    bool
	newRecord      bool
	tooSmall       bool
	cellW          int
}

// Option configures a Game.
type Option func(*Game)

// WithSeed makes board generation deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
		g.rng = seededRand(seed)
	}
}

// WithRecords attaches the record table results are inserted into.
func WithRecords(t *records.Table) Option {
	return func(g *Game) {
		g.records = t
	}
}

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithField starts the game on an existing field instead of a random one.
// The game size follows the field.
func WithField(f *Field) Option {
	return func(g *Game) {
		g.field = f
		g.size = f.Size()
	}
}

// OnFinish registers a callback run once when a game ends, after the result
// has been inserted into the record table.
func OnFinish(fn func(*Game)) Option {
	return func(g *Game) {
		g.onFinish = fn
	}
}

// New creates a game on a random size x size field. Zero settings mean
// config.DefaultSettings. Settings are assumed valid; see Settings.Validate.
func New(size int, player string, s config.Settings, opts ...Option) *Game {
	if s == (config.Settings{}) {
		s = config.DefaultSettings()
	}
	s.GridSize = size

	g := &Game{
		size:     size,
		settings: s,
		player:   player,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.seed = randomSeed()
		g.rng = seededRand(g.seed)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.field == nil {
		g.field = NewField(g.size, g.settings, g.rng)
	}
	g.settings.GridSize = g.size
	g.cellW = widestCube(g.field)
	g.refresh()
	return g
}

func seededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func randomSeed() int64 {
	var seed [8]byte
	_, _ = crand.Read(seed[:])
	return int64(binary.LittleEndian.Uint64(seed[:]))
}

// Replicate returns a fresh game with the same size, player, settings,
// record table and hooks on a new random field.
func (g *Game) Replicate() *Game {
	return New(g.size, g.player, g.settings,
		WithSeed(g.rng.Int64()),
		WithRecords(g.records),
		WithLogger(g.logger),
		OnFinish(g.onFinish),
	)
}

// Field returns the game field.
func (g *Game) Field() *Field {
	return g.field
}

// Size returns the grid side length.
func (g *Game) Size() int {
	return g.size
}

// Settings returns the settings the field was generated with.
func (g *Game) Settings() config.Settings {
	return g.settings
}

// Seed returns the seed the current field was generated from.
// Games built WithField report the seed of the unused generator.
func (g *Game) Seed() int64 {
	return g.seed
}

// Player returns the player name.
func (g *Game) Player() string {
	return g.player
}

// Score returns the points collected so far.
func (g *Game) Score() int {
	return g.score
}

// Records returns the attached record table, if any.
func (g *Game) Records() *records.Table {
	return g.records
}

// TryDeleteBlock removes the group at at if it has two or more cubes and
// scores it. Gravity and compaction run either way. Reports whether a group
// was removed.
func (g *Game) TryDeleteBlock(at Coord) bool {
	group := g.field.Same(at)
	n := group.Size()
	if n > 1 {
		group.Each(func(c Coord) {
			if cube := g.field.Delete(c); cube != nil {
				g.field.count(cube, -1)
			}
		})
		g.score = addPoints(g.score, Points(n))
		g.logger.Debug("group removed", "at", at, "cubes", n, "score", g.score)
	}

	g.Tick()
	return n > 1
}

// Tick applies gravity, then compaction.
func (g *Game) Tick() {
	g.FallDown()
	g.Join()
}

// FallDown drops every cube onto the next occupied cell below it, or the
// bottom row.
func (g *Game) FallDown() {
	f := g.field
	for x := range g.size {
		for y := g.size - 2; y >= 0; y-- {
			cube := f.Get(C(x, y))
			if cube == nil {
				continue
			}
			drop := 0
			for y+drop+1 < g.size && f.Get(C(x, y+drop+1)) == nil {
				drop++
			}
			if drop > 0 {
				f.Set(C(x, y), nil)
				f.Set(C(x, y+drop), cube)
			}
		}
	}
}

// Join squeezes out empty columns until none is left.
func (g *Game) Join() {
	for g.field.HasEmptyColumns() {
		g.field.MakeShift()
	}
}

// IsFinished reports whether no group of two or more cubes is left.
func (g *Game) IsFinished() bool {
	finished := true
	g.field.Each(func(at Coord, _ *Cube) {
		if finished && g.field.Same(at).Size() > 1 {
			finished = false
		}
	})
	return finished
}

// Autocomplete removes the first removable group, scanning columns left to
// right and each column top to bottom. Reports whether anything was
// removed; call it until it returns false to play the board out.
func (g *Game) Autocomplete() bool {
	for x := range g.size {
		for y := range g.size {
			at := C(x, y)
			if g.field.Get(at) == nil || g.field.Same(at).Size() < 2 {
				continue
			}
			return g.TryDeleteBlock(at)
		}
	}
	return false
}

// InsertResult adds the player's current score to the record table.
func (g *Game) InsertResult() {
	if g.records == nil {
		return
	}
	g.records.Insert(g.player, g.score)
}

// SaveRecords persists the record table. Failures are logged by the table.
func (g *Game) SaveRecords() {
	if g.records == nil {
		return
	}
	g.records.Save()
}
