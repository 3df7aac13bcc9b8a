// Package recording captures surface drawing commands for inspection and
// replay.
//
// A Recorder implements surface.Surface. Paths are cloned into a
// ResourcePool as they are recorded, so a path reused by the caller cannot
// alter the recording. FinishRecording returns an immutable Recording that
// replays onto any other surface:
//
//	rec := recording.NewRecorder(800, 600)
//	canvas := render.NewCanvas(rec)
//	root.ApplyTo(canvas)
//	r := rec.FinishRecording()
//
//	img := surface.NewImageSurface(800, 600)
//	_ = r.Playback(img)
//
// Scene tests use recordings to assert what a draw walk painted without
// comparing pixels.
package recording
