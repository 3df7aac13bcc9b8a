package recording

import (
	"errors"
	"image/color"
	"slices"
	"testing"

	"github.com/pensool/pensool"
	"github.com/pensool/pensool/surface"
)

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdClear, "Clear"},
		{CmdFillPath, "FillPath"},
		{CmdStrokePath, "StrokePath"},
		{CmdDrawText, "DrawText"},
		{CommandType(254), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecorderCapturesCommands(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.Clear(color.White)

	p := pensool.NewPath()
	p.Rectangle(10, 10, 20, 20)
	rec.Fill(p, surface.FillStyle{Color: color.Black})
	rec.Stroke(p, surface.DefaultStrokeStyle())
	rec.DrawText("hi", pensool.V2(5, 50), surface.TextStyle{Size: 12})
	rec.Stroke(pensool.NewPath(), surface.DefaultStrokeStyle())

	var got []CommandType
	for _, c := range rec.Commands() {
		got = append(got, c.Type())
	}
	want := []CommandType{CmdClear, CmdFillPath, CmdStrokePath, CmdDrawText}
	if !slices.Equal(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}
}

func TestRecordingIsImmutable(t *testing.T) {
	rec := NewRecorder(50, 50)
	p := pensool.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	rec.Stroke(p, surface.DefaultStrokeStyle())

	p.LineTo(40, 40)
	r := rec.FinishRecording()

	stored := r.Resources().GetPath(r.Commands()[0].(StrokePathCommand).Path)
	if n := len(stored.Elements()); n != 2 {
		t.Errorf("recorded path has %d elements, want 2", n)
	}
	if len(rec.Commands()) != 0 {
		t.Error("FinishRecording did not reset the recorder")
	}
}

func TestRecordingInkBounds(t *testing.T) {
	rec := NewRecorder(200, 200)
	p := pensool.NewPath()
	p.Rectangle(0, 0, 101, 101)
	rec.Stroke(p, surface.StrokeStyle{Width: 1})

	got := rec.FinishRecording().InkBounds()
	want := pensool.Bounds{X: -1, Y: -1, Width: 103, Height: 103}
	if got != want {
		t.Errorf("InkBounds() = %v, want %v", got, want)
	}
	if b := NewRecorder(1, 1).FinishRecording().InkBounds(); !b.IsNull() {
		t.Errorf("empty InkBounds() = %v, want null", b)
	}
}

func TestPlaybackOntoImage(t *testing.T) {
	rec := NewRecorder(40, 40)
	rec.Clear(color.White)
	p := pensool.NewPath()
	p.Rectangle(10, 10, 20, 20)
	rec.Fill(p, surface.FillStyle{Color: color.RGBA{0, 0, 255, 255}})

	img := surface.NewImageSurface(40, 40)
	defer img.Close()
	if err := rec.FinishRecording().Playback(img); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	if c := img.Snapshot().RGBAAt(20, 20); c.B < 200 || c.R > 50 {
		t.Errorf("played back pixel = %v, want blue", c)
	}
	if c := img.Snapshot().RGBAAt(2, 2); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel = %v, want white", c)
	}
}

func TestPlaybackInvalidRef(t *testing.T) {
	r := &Recording{
		commands:  []Command{FillPathCommand{Path: 3}},
		resources: NewResourcePool(),
	}
	err := r.Playback(surface.NewImageSurface(4, 4))
	if !errors.Is(err, ErrInvalidRef) {
		t.Errorf("Playback() error = %v, want ErrInvalidRef", err)
	}
}

func TestRecorderRegistered(t *testing.T) {
	s, err := surface.NewSurfaceByName("recording", 10, 20)
	if err != nil {
		t.Fatalf("NewSurfaceByName(recording) error = %v", err)
	}
	if _, ok := s.(*Recorder); !ok {
		t.Errorf("NewSurfaceByName(recording) = %T, want *Recorder", s)
	}
}

func TestRecorderSnapshot(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Clear(color.Black)
	if c := rec.Snapshot().RGBAAt(3, 3); c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Snapshot pixel = %v, want black", c)
	}
	if len(rec.Commands()) != 1 {
		t.Error("Snapshot consumed the recorded commands")
	}
}
