// internal/ui/transcript.go
package ui

import (
	"particle-backdrop/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Transcript shows the most recent chat lines in the top-left corner.
type Transcript struct {
	lines []string
	max   int
	face  font.Face
}

func NewTranscript(maxLines int, face font.Face) *Transcript {
	if maxLines <= 0 {
		maxLines = config.TranscriptLines
	}
	return &Transcript{max: maxLines, face: face}
}

// Add appends a line, dropping the oldest when full.
func (t *Transcript) Add(line string) {
	t.lines = append(t.lines, line)
	if over := len(t.lines) - t.max; over > 0 {
		t.lines = append(t.lines[:0], t.lines[over:]...)
	}
}

func (t *Transcript) Lines() []string {
	return t.lines
}

func (t *Transcript) Draw(screen *ebiten.Image) {
	if t.face == nil {
		return
	}
	for i, line := range t.lines {
		text.Draw(screen, line, t.face, config.TranscriptX, config.TranscriptY+i*config.TranscriptLineH, config.TranscriptColor)
	}
}
