// Package recording captures drawing operations for export to DXF.
//
// A Recorder offers a gg.Context style drawing API. Instead of painting
// pixels it records the calls as ggdxf primitives, each paired with the
// graphics state in effect. The finished Recording is immutable and can be
// played back into any number of adapters.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//
//	rec.SetFillRGBA(1, 0, 0, 1)
//	rec.DrawRectangle(100, 100, 200, 150)
//	rec.Fill()
//
//	rec.SetStrokeRGBA(0, 0, 1, 1)
//	rec.SetLineWidth(2)
//	rec.DrawCircle(400, 300, 50)
//	rec.Stroke()
//
//	r := rec.FinishRecording()
//	if err := r.Render("drawing.dxf.gz", nil); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinates
//
// Path coordinates are local. The transform in effect when a path is
// painted maps it to device space, as with a canvas. Push and Pop save and
// restore the whole state, including the clip.
package recording
