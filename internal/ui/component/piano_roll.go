package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/theme"
)

const pianoKeyWidth = 5

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PianoRollView draws the notes of the selected region on a pitch × beat grid,
// highest pitch on top.
type PianoRollView struct {
	theme *theme.Theme
}

// NewPianoRollView creates a piano roll view.
func NewPianoRollView(th *theme.Theme) *PianoRollView {
	return &PianoRollView{theme: th}
}

// Render implements ContentView.
func (v *PianoRollView) Render(data entity.EditorData, width, height int) string {
	region := selectedRegion(data)
	if region == nil || len(region.Notes) == 0 {
		return placeholder(v.theme, "no notes", width, height)
	}
	grid := width - pianoKeyWidth
	if grid <= 0 || height < 2 {
		return block(v.theme.Body, []string{region.Name}, width, height)
	}

	lo, hi := pitchRange(region.Notes)
	rows := min(hi-lo+1, height-1)
	top := lo + rows - 1

	span := math.Max(region.Duration, 1)
	col := func(beat float64) int {
		c := int(beat / span * float64(grid))
		return max(0, min(c, grid-1))
	}

	lines := make([]string, 0, rows+1)
	lines = append(lines, fitEllipsis(region.Name, width))
	for pitch := top; pitch > top-rows; pitch-- {
		cells := []rune(strings.Repeat("·", grid))
		for _, n := range region.Notes {
			if n.Pitch != pitch {
				continue
			}
			for c := col(n.StartTime); c <= col(n.StartTime+n.Duration) && c < grid; c++ {
				cells[c] = '■'
			}
		}
		lines = append(lines, fit(pitchName(pitch), pianoKeyWidth)+string(cells))
	}
	return block(v.theme.Body, lines, width, height)
}

func pitchRange(notes []entity.NoteState) (lo, hi int) {
	lo, hi = notes[0].Pitch, notes[0].Pitch
	for _, n := range notes[1:] {
		lo = min(lo, n.Pitch)
		hi = max(hi, n.Pitch)
	}
	return lo, hi
}

// pitchName formats a MIDI pitch, 60 being C4.
func pitchName(pitch int) string {
	if pitch < 0 {
		return "?"
	}
	return fmt.Sprintf("%s%d", noteNames[pitch%12], pitch/12-1)
}
