package recording

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/pensool/pensool"
	ipath "github.com/pensool/pensool/internal/path"
	"github.com/pensool/pensool/surface"
)

// ErrInvalidRef is returned by Playback for a command whose path is missing.
var ErrInvalidRef = errors.New("recording: invalid path reference")

// Recorder captures drawing operations as commands.
// It implements surface.Surface, so a render.Canvas can paint into it
// directly. Use FinishRecording to obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	closed        bool
}

var _ surface.Surface = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Width returns the recording width.
func (r *Recorder) Width() int { return r.width }

// Height returns the recording height.
func (r *Recorder) Height() int { return r.height }

// Clear records a ClearCommand.
func (r *Recorder) Clear(c color.Color) {
	if r.closed {
		return
	}
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// Fill records a FillPathCommand. Empty paths are not recorded.
func (r *Recorder) Fill(path *pensool.Path, style surface.FillStyle) {
	if r.closed || path == nil || path.IsEmpty() {
		return
	}
	r.commands = append(r.commands, FillPathCommand{Path: r.resources.AddPath(path), Style: style})
}

// Stroke records a StrokePathCommand. Empty paths are not recorded.
func (r *Recorder) Stroke(path *pensool.Path, style surface.StrokeStyle) {
	if r.closed || path == nil || path.IsEmpty() {
		return
	}
	r.commands = append(r.commands, StrokePathCommand{Path: r.resources.AddPath(path), Style: style})
}

// DrawText records a DrawTextCommand.
func (r *Recorder) DrawText(s string, at pensool.Vec2, style surface.TextStyle) {
	if r.closed || s == "" {
		return
	}
	r.commands = append(r.commands, DrawTextCommand{Text: s, At: at, Style: style})
}

// Flush is a no-op.
func (r *Recorder) Flush() error { return nil }

// Snapshot replays the commands recorded so far onto an image surface.
func (r *Recorder) Snapshot() *image.RGBA {
	img := surface.NewImageSurface(r.width, r.height)
	defer img.Close()
	if err := r.recording().Playback(img); err != nil {
		pensool.Logger().Warn("recording: snapshot playback failed", "err", err)
	}
	return img.Snapshot()
}

// Close stops recording. Close is idempotent.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards everything recorded.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources = NewResourcePool()
}

// FinishRecording returns the commands recorded so far as a Recording and
// resets the recorder for reuse.
func (r *Recorder) FinishRecording() *Recording {
	rec := r.recording()
	r.commands = make([]Command, 0, 64)
	r.resources = NewResourcePool()
	return rec
}

func (r *Recorder) recording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{width: r.width, height: r.height, commands: cmds, resources: r.resources}
}

// Recording is an immutable sequence of drawing commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Playback replays the recording onto s.
func (r *Recording) Playback(s surface.Surface) error {
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			s.Clear(c.Color)
		case FillPathCommand:
			p := r.resources.GetPath(c.Path)
			if p == nil {
				return fmt.Errorf("command %d (%s): %w", i, c.Type(), ErrInvalidRef)
			}
			s.Fill(p, c.Style)
		case StrokePathCommand:
			p := r.resources.GetPath(c.Path)
			if p == nil {
				return fmt.Errorf("command %d (%s): %w", i, c.Type(), ErrInvalidRef)
			}
			s.Stroke(p, c.Style)
		case DrawTextCommand:
			s.DrawText(c.Text, c.At, c.Style)
		}
	}
	return s.Flush()
}

// InkBounds returns the device-space bounds of the recorded fills and
// strokes. Text commands contribute only their origin.
func (r *Recording) InkBounds() pensool.Bounds {
	b := pensool.NullBounds()
	for _, cmd := range r.commands {
		var e ipath.Extents
		switch c := cmd.(type) {
		case FillPathCommand:
			e = ipath.PathExtents(ipath.Flatten(r.resources.GetPath(c.Path), ipath.Tolerance))
		case StrokePathCommand:
			lines := ipath.Flatten(r.resources.GetPath(c.Path), ipath.Tolerance)
			e = ipath.StrokeExtents(lines, ipath.Stroke{Width: c.Style.Width, Cap: capOf(c.Style.Cap)})
		case DrawTextCommand:
			e.Add(c.At)
		}
		if e.Valid {
			b = b.Union(pensool.FromExtents(e.X0, e.Y0, e.X1, e.Y1))
		}
	}
	return b
}

func capOf(c surface.LineCap) ipath.Cap {
	switch c {
	case surface.LineCapRound:
		return ipath.CapRound
	case surface.LineCapSquare:
		return ipath.CapSquare
	}
	return ipath.CapButt
}

func init() {
	surface.Register("recording", 1, func(opts surface.Options) (surface.Surface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	})
}
