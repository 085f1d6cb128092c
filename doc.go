// Package ggdxf exports 2D drawings as DXF files for CAD programs.
//
// # Overview
//
// An Adapter receives the drawing primitives a plotting host produces,
// paths, text, images and clips, each with a GraphicsState snapshot, and
// translates them into entities of a dxf.Document:
//
//   - stroked paths become LWPOLYLINE entities, one per subpath
//   - filled paths become solid HATCH entities
//   - text becomes TEXT entities, or outlines when the transform cannot be
//     expressed by TEXT
//   - images become IMAGE entities backed by PNG files
//
// Curves are flattened within a tolerance, colors map to the 256 color
// palette, line widths to standard lineweights and dash patterns to named
// linetypes.
//
// # Quick Start
//
//	a := ggdxf.NewAdapter(640, 480)
//	st := ggdxf.DefaultState()
//
//	a.MoveTo(10, 10)
//	a.LineTo(200, 10)
//	a.CurveTo(ggdxf.Pt(300, 10), ggdxf.Pt(300, 200), ggdxf.Pt(200, 200))
//	a.StrokePath(st)
//
//	if err := ggdxf.Save(a, "plot.dxf"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// Hosts draw in device space, by default with the origin at the top left
// and y growing downward. The drawing is flipped so it appears upright in
// the y-up CAD space; one device unit becomes one drawing unit. Use
// WithOrigin(OriginBottomLeft) for hosts that already use y-up.
//
// # Recording
//
// Package recording captures primitives for later playback into one or
// more adapters.
package ggdxf

// Version is the library version.
const Version = "0.1.0"
