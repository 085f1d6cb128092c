// Command dxfdemo draws a sample plot and saves it as a DXF drawing.
//
// The output extension selects the encoding: .dxf, .dxf.gz or .dxf.zst.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/term"

	ggdxf "github.com/gogpu/gg-dxf"
	"github.com/gogpu/gg-dxf/recording"
)

func main() {
	var (
		width     = flag.Float64("width", 800, "canvas width in points")
		height    = flag.Float64("height", 600, "canvas height in points")
		output    = flag.String("output", "demo.dxf", "output file")
		tolerance = flag.Float64("tolerance", ggdxf.DefaultTolerance, "curve flattening tolerance")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	ggdxf.SetLogger(newLogger(*verbose))

	rec := recording.NewRecorder(*width, *height)
	plot := rect{60, 40, *width*0.55 - 60, *height*0.5 - 40}
	drawLineChart(rec, plot)
	drawBoxPlot(rec, rect{*width * 0.62, 40, *width*0.35 - 20, *height*0.5 - 40})
	drawContours(rec, rect{60, *height*0.58 + 20, *width*0.35 - 60, *height*0.42 - 60})
	drawGradientBar(rec, rect{*width * 0.4, *height * 0.62, 30, *height * 0.3})
	drawLabels(rec, *width*0.55, *height*0.62)
	drawHeatmap(rec, rect{*width * 0.7, *height * 0.62, *width * 0.25, *height * 0.3})

	a := ggdxf.NewAdapter(*width, *height, ggdxf.WithTolerance(*tolerance))
	r := rec.FinishRecording()
	if err := r.Playback(a); err != nil {
		log.Fatalf("playback: %v", err)
	}
	st := a.Stats()
	if err := ggdxf.Save(a, *output); err != nil {
		log.Fatalf("save: %v", err)
	}
	fmt.Printf("%s: %d entities (%d polylines, %d hatches, %d texts, %d images), %d degraded, %d skipped\n",
		*output, st.Entities(), st.Polylines, st.Hatches, st.Texts, st.Images, st.Degraded, st.Skipped)
}

// newLogger logs text to a terminal and JSON otherwise.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

type rect struct {
	x, y, w, h float64
}

func drawAxes(rec *recording.Recorder, r rect, xTicks, yTicks int) {
	rec.Push()
	defer rec.Pop()
	rec.SetLayer("axes")
	rec.SetStrokeRGBA(0, 0, 0, 1)
	rec.SetLineWidth(1)
	rec.DrawLine(r.x, r.y+r.h, r.x+r.w, r.y+r.h)
	rec.DrawLine(r.x, r.y, r.x, r.y+r.h)
	rec.Stroke()

	rec.SetFontSize(8)
	rec.SetFillRGBA(0, 0, 0, 1)
	for i := 0; i <= xTicks; i++ {
		x := r.x + r.w*float64(i)/float64(xTicks)
		rec.DrawLine(x, r.y+r.h, x, r.y+r.h+4)
		rec.Stroke()
		rec.DrawStringAnchored(fmt.Sprint(i), x, r.y+r.h+6, ggdxf.AlignCenter, ggdxf.AlignTop)
	}
	for i := 0; i <= yTicks; i++ {
		y := r.y + r.h - r.h*float64(i)/float64(yTicks)
		rec.DrawLine(r.x-4, y, r.x, y)
		rec.Stroke()
		rec.DrawStringAnchored(fmt.Sprintf("%.1f", float64(i)/float64(yTicks)), r.x-6, y, ggdxf.AlignRight, ggdxf.AlignMiddle)
	}

	rec.SetLayer("grid")
	rec.SetStrokeRGBA(0.7, 0.7, 0.7, 1)
	rec.SetLineWidth(0.5)
	rec.SetDash(4, 2)
	for i := 1; i <= yTicks; i++ {
		y := r.y + r.h - r.h*float64(i)/float64(yTicks)
		rec.DrawLine(r.x, y, r.x+r.w, y)
	}
	rec.Stroke()
}

func drawLineChart(rec *recording.Recorder, r rect) {
	drawAxes(rec, r, 10, 5)

	rec.Push()
	defer rec.Pop()
	rec.SetLayer("data")
	series := []struct {
		c     ggdxf.RGBA
		phase float64
	}{
		{ggdxf.Hex("#1f77b4"), 0},
		{ggdxf.Hex("#ff7f0e"), 1.3},
	}
	for _, s := range series {
		rec.SetStrokeStyle(ggdxf.Solid(s.c))
		rec.SetLineWidth(1.5)
		const n = 60
		for i := 0; i <= n; i++ {
			t := float64(i) / n
			x := r.x + r.w*t
			y := r.y + r.h*(0.5-0.4*math.Sin(2*math.Pi*t+s.phase))
			if i == 0 {
				rec.MoveTo(x, y)
			} else {
				rec.LineTo(x, y)
			}
		}
		rec.Stroke()
	}
	rec.SetFontSize(12)
	rec.SetFillRGBA(0, 0, 0, 1)
	rec.DrawStringAnchored("Signal", r.x+r.w/2, r.y-8, ggdxf.AlignCenter, ggdxf.AlignBottom)
}

func drawBoxPlot(rec *recording.Recorder, r rect) {
	rec.Push()
	defer rec.Pop()
	rec.SetLayer("boxplot")
	groups := [][5]float64{
		{0.1, 0.3, 0.45, 0.6, 0.9},
		{0.2, 0.35, 0.5, 0.7, 0.8},
		{0.05, 0.2, 0.3, 0.5, 0.95},
	}
	bw := r.w / float64(len(groups)) * 0.5
	y := func(v float64) float64 { return r.y + r.h*(1-v) }
	for i, g := range groups {
		cx := r.x + r.w*(float64(i)+0.5)/float64(len(groups))
		rec.SetFillRGBA(0.55, 0.7, 0.85, 1)
		rec.SetStrokeRGBA(0, 0, 0, 1)
		rec.DrawRectangle(cx-bw/2, y(g[3]), bw, y(g[1])-y(g[3]))
		rec.FillStroke()
		rec.DrawLine(cx-bw/2, y(g[2]), cx+bw/2, y(g[2]))
		rec.DrawLine(cx, y(g[0]), cx, y(g[1]))
		rec.DrawLine(cx, y(g[3]), cx, y(g[4]))
		rec.Stroke()
		rec.DrawPoint(cx, y(g[4])-6, 2)
		rec.Fill()
	}
}

func drawContours(rec *recording.Recorder, r rect) {
	rec.Push()
	defer rec.Pop()
	rec.SetLayer("contours")
	cx, cy := r.x+r.w/2, r.y+r.h/2
	bands := 6
	for i := bands; i >= 1; i-- {
		t := float64(i) / float64(bands)
		rec.SetFillRGBA(1-t*0.8, 0.3+0.5*t, t, 1)
		rec.DrawEllipse(cx, cy, r.w/2*t, r.h/2*t)
		rec.Fill()
	}
	// Clip a marker ring to the upper half of the plot.
	rec.ClipRect(r.x, r.y, r.w, r.h/2)
	rec.SetStrokeRGBA(1, 1, 1, 1)
	rec.SetLineWidth(2)
	rec.DrawCircle(cx, cy, math.Min(r.w, r.h)*0.3)
	rec.Stroke()
}

func drawGradientBar(rec *recording.Recorder, r rect) {
	rec.Push()
	defer rec.Pop()
	rec.SetLayer("colorbar")
	g := ggdxf.NewLinearGradientBrush(r.x, r.y+r.h, r.x, r.y).
		AddColorStop(0, ggdxf.RGB(0.27, 0, 0.33)).
		AddColorStop(0.5, ggdxf.RGB(0.13, 0.57, 0.55)).
		AddColorStop(1, ggdxf.RGB(0.99, 0.91, 0.14))
	rec.SetFillStyle(g)
	rec.DrawRectangle(r.x, r.y, r.w, r.h)
	rec.Fill()
}

func drawLabels(rec *recording.Recorder, x, y float64) {
	rec.Push()
	defer rec.Pop()
	rec.SetLayer("labels")
	rec.SetFillRGBA(0.2, 0.2, 0.2, 1)
	rec.SetFontSize(14)

	rec.Push()
	rec.RotateAbout(-math.Pi/6, x, y+40)
	rec.DrawString("rotated", x, y+40)
	rec.Pop()

	rec.Push()
	rec.Translate(x, y+120)
	rec.Shear(-0.4, 0)
	rec.DrawString("sheared", 0, 0)
	rec.Pop()
}

func drawHeatmap(rec *recording.Recorder, r rect) {
	const n = 32
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for j := range n {
		for i := range n {
			fx, fy := float64(i)/n-0.5, float64(j)/n-0.5
			v := math.Exp(-8 * (fx*fx + fy*fy))
			img.SetNRGBA(i, j, color.NRGBA{
				R: uint8(255 * v),
				G: uint8(80 * (1 - v)),
				B: uint8(255 * (1 - v)),
				A: 255,
			})
		}
	}
	rec.Push()
	defer rec.Pop()
	rec.SetLayer("heatmap")
	rec.DrawImageScaled(img, r.x, r.y, r.w, r.h)
}
