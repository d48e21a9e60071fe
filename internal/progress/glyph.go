package progress

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

// Glyph characters emitted per finished shard.
const (
	passGlyph = "."
	failGlyph = "E"
)

// GlyphStream serializes single-character progress writes from concurrent
// shard workers. Each glyph is one semantic unit; the mutex guarantees no
// worker's write is torn by another's.
type GlyphStream struct {
	mu   sync.Mutex
	w    io.Writer
	pass *color.Color
	fail *color.Color
}

// NewGlyphStream creates a GlyphStream writing to w, with colors explicitly
// enabled or disabled.
func NewGlyphStream(w io.Writer, colorEnabled bool) *GlyphStream {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	if colorEnabled {
		pass.EnableColor()
		fail.EnableColor()
	} else {
		pass.DisableColor()
		fail.DisableColor()
	}
	return &GlyphStream{w: w, pass: pass, fail: fail}
}

// Pass emits the success glyph for one finished shard.
func (g *GlyphStream) Pass() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pass.Fprint(g.w, passGlyph)
	g.flush()
}

// Fail emits the failure glyph for one finished shard.
func (g *GlyphStream) Fail() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fail.Fprint(g.w, failGlyph)
	g.flush()
}

// flush pushes the glyph out immediately so progress is visible while shards
// are still running. Callers must hold the mutex.
func (g *GlyphStream) flush() {
	type flusher interface{ Flush() error }
	type syncer interface{ Sync() error }
	switch f := g.w.(type) {
	case flusher:
		_ = f.Flush()
	case syncer:
		_ = f.Sync()
	}
}
