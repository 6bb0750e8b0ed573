package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/GardenPlot/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// point is a 2D coordinate in drawing units.
type point struct {
	x, y float64
}

// lineSeg is a segment between two points, used for chaining disconnected
// LINE and ARC entities into closed outlines.
type lineSeg struct {
	start point
	end   point
}

// SiteImportResult holds structures recovered from a DXF site plan.
type SiteImportResult struct {
	Structures []model.StructureDefinition
	Errors     []string
	Warnings   []string
}

// ImportSiteDXF reads a DXF site plan and converts each closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs) into a
// StructureDefinition sized to the shape's bounding box. Drawing units are
// assumed to be meters.
func ImportSiteDXF(path string) SiteImportResult {
	result := SiteImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []lineSeg

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := lwPolylinePoints(e)
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circlePoints(e, 32))

		case *entity.Arc:
			pts := arcPoints(e, 16)
			if len(pts) >= 2 {
				segments = append(segments, pointChainToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, lineSeg{
				start: point{x: e.Start[0], y: e.Start[1]},
				end:   point{x: e.End[0], y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	for _, chained := range chainSegments(segments, 0.01) {
		outlines = append(outlines, chained)
	}

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	shapeNum := 0
	for _, outline := range outlines {
		shapeNum++
		width, length := boundingSize(outline)

		if width < 0.05 || length < 0.05 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f m)", width, length))
			continue
		}

		result.Structures = append(result.Structures, model.StructureDefinition{
			ID:     fmt.Sprintf("site-shape-%d", shapeNum),
			Name:   fmt.Sprintf("Site Shape %d", shapeNum),
			Width:  width,
			Length: length,
			Color:  "#8D6E63",
		})
	}

	return result
}

// lwPolylinePoints converts a DXF LWPOLYLINE entity to a point outline.
// Bulge values on vertices produce interpolated arc segments so curved
// edges contribute to the bounding box.
func lwPolylinePoints(lw *entity.LwPolyline) []point {
	var outline []point

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := point{x: v[0], y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			nextIdx := (i + 1) % len(lw.Vertices)
			next := point{x: lw.Vertices[nextIdx][0], y: lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 16)
			outline = append(outline, arcPts[:len(arcPts)-1]...)
		} else {
			outline = append(outline, current)
		}
	}

	return outline
}

// bulgeArcPoints generates points along an arc defined by two endpoints and
// a DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 point, bulge float64, numSegments int) []point {
	mx := (p1.x + p2.x) / 2
	my := (p1.y + p2.y) / 2
	dx := p2.x - p1.x
	dy := p2.y - p1.y
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return []point{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.y-cy, p1.x-cx)
	endAngle := math.Atan2(p2.y-cy, p2.x-cx)

	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	pts := make([]point, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, point{
			x: cx + radius*math.Cos(angle),
			y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// circlePoints approximates a circle as a regular polygon.
func circlePoints(c *entity.Circle, numSegments int) []point {
	outline := make([]point, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		outline[i] = point{
			x: cx + r*math.Cos(angle),
			y: cy + r*math.Sin(angle),
		}
	}
	return outline
}

// arcPoints converts a DXF ARC entity to a series of line points.
func arcPoints(a *entity.Arc, numSegments int) []point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = point{
			x: cx + r*math.Cos(angle),
			y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointChainToSegments converts a point sequence to connected segments.
func pointChainToSegments(pts []point) []lineSeg {
	segs := make([]lineSeg, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, lineSeg{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them
// connected. Open chains are discarded.
func chainSegments(segs []lineSeg, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 3 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	// Largest shapes first so numbering is stable across runs
	sort.Slice(outlines, func(i, j int) bool {
		return shapeArea(outlines[i]) > shapeArea(outlines[j])
	})

	return outlines
}

func pointsClose(a, b point, tolerance float64) bool {
	dx := a.x - b.x
	dy := a.y - b.y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// shapeArea computes the absolute area of a polygon using the shoelace formula.
func shapeArea(o []point) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].x * o[j].y
		area -= o[j].x * o[i].y
	}
	return math.Abs(area) / 2
}

// boundingSize returns width and length of the outline's bounding box.
func boundingSize(o []point) (float64, float64) {
	if len(o) == 0 {
		return 0, 0
	}
	minX, minY := o[0].x, o[0].y
	maxX, maxY := o[0].x, o[0].y
	for _, p := range o[1:] {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}
	return maxX - minX, maxY - minY
}
