package step

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
)

// ShellConverter walks a Shell's object graph directly -- Face, Cycle,
// HalfEdge, GlobalEdge, Vertex, SurfaceVertex, GlobalVertex, Surface --
// and emits the corresponding STEP AP214 entities. It replaces
// the teacher's triangle-mesh MeshConverter: this kernel's faces are
// already planar boundary loops, so there is no mesh to walk, only the
// B-rep graph itself.
type ShellConverter struct {
	store *object.Store

	entities  []Entity
	idCounter int

	points     map[object.Handle[object.GlobalVertex]]int
	vertices   map[object.Handle[object.GlobalVertex]]int
	directions map[geom.Vector3]int
	surfaces   map[object.Handle[object.Surface]]int
	edgeCurves map[object.Handle[object.GlobalEdge]]edgeCurveRef
}

type edgeCurveRef struct {
	id    int
	start object.Handle[object.GlobalVertex]
	end   object.Handle[object.GlobalVertex]
}

// NewShellConverter returns a converter that reads entities out of s.
func NewShellConverter(s *object.Store) *ShellConverter {
	return &ShellConverter{
		store:      s,
		entities:   make([]Entity, 0),
		idCounter:  1,
		points:     make(map[object.Handle[object.GlobalVertex]]int),
		vertices:   make(map[object.Handle[object.GlobalVertex]]int),
		directions: make(map[geom.Vector3]int),
		surfaces:   make(map[object.Handle[object.Surface]]int),
		edgeCurves: make(map[object.Handle[object.GlobalEdge]]edgeCurveRef),
	}
}

func (c *ShellConverter) addEntity(e Entity) int {
	e.SetID(c.idCounter)
	c.entities = append(c.entities, e)
	c.idCounter++
	return e.ID()
}

// getOrCreatePoint returns the CARTESIAN_POINT for gv's position, reusing
// one entity across every HalfEdge that welds to the same GlobalVertex.
func (c *ShellConverter) getOrCreatePoint(gv object.Handle[object.GlobalVertex]) int {
	if id, ok := c.points[gv]; ok {
		return id
	}
	p := c.store.GetGlobalVertex(gv).Position
	id := c.addEntity(&CartesianPoint{Coordinates: []float64{p.X, p.Y, p.Z}})
	c.points[gv] = id
	return id
}

// getOrCreateVertexPoint returns the VERTEX_POINT for gv, shared across
// every edge that terminates there.
func (c *ShellConverter) getOrCreateVertexPoint(gv object.Handle[object.GlobalVertex]) int {
	if id, ok := c.vertices[gv]; ok {
		return id
	}
	id := c.addEntity(&VertexPoint{VertexGeometry: c.getOrCreatePoint(gv)})
	c.vertices[gv] = id
	return id
}

func (c *ShellConverter) getOrCreateDirection(d geom.Vector3) int {
	d = d.Normalize()
	if id, ok := c.directions[d]; ok {
		return id
	}
	arr := d.Array()
	id := c.addEntity(&Direction{DirectionRatios: arr[:]})
	c.directions[d] = id
	return id
}

func (c *ShellConverter) createAxis2Placement(origin geom.Point3, zAxis, xAxis geom.Vector3) int {
	return c.addEntity(&Axis2Placement3D{
		Location:     c.addEntity(&CartesianPoint{Coordinates: []float64{origin.X, origin.Y, origin.Z}}),
		Axis:         c.getOrCreateDirection(zAxis),
		RefDirection: c.getOrCreateDirection(xAxis),
	})
}

// createEdgeCurve returns the EDGE_CURVE shared by both oriented uses of
// ge, building it from the first HalfEdge encountered and recording which
// GlobalVertex its EdgeStart refers to so the second use can tell whether
// its ORIENTED_EDGE needs Orientation = false.
func (c *ShellConverter) createEdgeCurve(ge object.Handle[object.GlobalEdge], startGV, endGV object.Handle[object.GlobalVertex], startPos, endPos geom.Point3) edgeCurveRef {
	if ref, ok := c.edgeCurves[ge]; ok {
		return ref
	}

	direction := endPos.Sub(startPos)
	vectorID := c.addEntity(&Vector{
		Orientation: c.getOrCreateDirection(direction),
		Magnitude:   direction.Length(),
	})
	lineID := c.addEntity(&Line{
		Pnt: c.addEntity(&CartesianPoint{Coordinates: []float64{startPos.X, startPos.Y, startPos.Z}}),
		Dir: vectorID,
	})

	id := c.addEntity(&EdgeCurve{
		EdgeStart:    c.getOrCreateVertexPoint(startGV),
		EdgeEnd:      c.getOrCreateVertexPoint(endGV),
		EdgeGeometry: lineID,
		SameSense:    true,
	})

	ref := edgeCurveRef{id: id, start: startGV, end: endGV}
	c.edgeCurves[ge] = ref
	return ref
}

// globalVertexOf resolves the GlobalVertex a Vertex ultimately welds to.
func (c *ShellConverter) globalVertexOf(vh object.Handle[object.Vertex]) object.Handle[object.GlobalVertex] {
	v := c.store.GetVertex(vh)
	sv := c.store.GetSurfaceVertex(v.SurfaceForm)
	return sv.GlobalForm
}

// createOrientedEdge emits the ORIENTED_EDGE for one HalfEdge, sharing the
// underlying EDGE_CURVE with its opposite half-edge and flipping
// Orientation when this half-edge runs against the curve's stored sense.
func (c *ShellConverter) createOrientedEdge(heh object.Handle[object.HalfEdge]) int {
	he := c.store.GetHalfEdge(heh)
	startGV := c.globalVertexOf(he.Vertices[0])
	endGV := c.globalVertexOf(he.Vertices[1])
	startPos := c.store.GetGlobalVertex(startGV).Position
	endPos := c.store.GetGlobalVertex(endGV).Position

	ref := c.createEdgeCurve(he.GlobalForm, startGV, endGV, startPos, endPos)
	orientation := ref.start == startGV

	return c.addEntity(&OrientedEdge{EdgeElement: ref.id, Orientation: orientation})
}

func (c *ShellConverter) createEdgeLoop(ch object.Handle[object.Cycle]) int {
	cy := c.store.GetCycle(ch)
	oriented := make([]int, len(cy.HalfEdges))
	for i, heh := range cy.HalfEdges {
		oriented[i] = c.createOrientedEdge(heh)
	}
	return c.addEntity(&EdgeLoop{EdgeList: oriented})
}

// createPlane returns the PLANE geometry for surf, building its
// AXIS2_PLACEMENT_3D from the plane's u-line origin and direction and the
// u x v normal.
func (c *ShellConverter) createPlane(sh object.Handle[object.Surface]) (int, error) {
	if id, ok := c.surfaces[sh]; ok {
		return id, nil
	}
	surf := c.store.GetSurface(sh)
	line, ok := surf.U.(geom.LinePath)
	if !ok {
		return 0, &kernelerr.InvariantViolated{Kind: "Surface", Detail: "step export only supports plane-through-three-points surfaces"}
	}
	xAxis := line.Line.Direction
	zAxis := xAxis.Cross(surf.V)

	planeID := c.addEntity(&Plane{Position: c.createAxis2Placement(line.Line.Origin, zAxis, xAxis)})
	c.surfaces[sh] = planeID
	return planeID, nil
}

// createAdvancedFace emits the ADVANCED_FACE for fh: one FACE_OUTER_BOUND
// per exterior cycle and one FACE_BOUND per interior (hole) cycle, all
// sharing the face's PLANE geometry.
func (c *ShellConverter) createAdvancedFace(fh object.Handle[object.Face]) (int, error) {
	f := c.store.GetFace(fh)

	var sh object.Handle[object.Surface]
	cy := c.store.GetCycle(f.Exterior)
	if len(cy.HalfEdges) > 0 {
		he := c.store.GetHalfEdge(cy.HalfEdges[0])
		v := c.store.GetVertex(he.Vertices[0])
		sv := c.store.GetSurfaceVertex(v.SurfaceForm)
		sh = sv.Surface
	}

	bounds := []int{c.addEntity(&FaceOuterBound{Bound: c.createEdgeLoop(f.Exterior), Orientation: true})}
	for _, in := range f.Interiors {
		bounds = append(bounds, c.addEntity(&FaceBound{Bound: c.createEdgeLoop(in), Orientation: true}))
	}

	planeID, err := c.createPlane(sh)
	if err != nil {
		return 0, err
	}

	return c.addEntity(&AdvancedFace{
		Bounds:       bounds,
		FaceGeometry: planeID,
		SameSense:    true,
	}), nil
}

// ConvertShell converts the single shell sh into a full STEP AP214 entity
// list under a product named name.
func (c *ShellConverter) ConvertShell(sh object.Handle[object.Shell], name string) ([]Entity, error) {
	return c.ConvertShells([]object.Handle[object.Shell]{sh}, name)
}

// ConvertShells converts one or more independently-built shells into a
// single STEP AP214 entity list, one MANIFOLD_SOLID_BREP per shell under a
// shared product named name. This is what backs StreamWriter: a producer
// can build several solids and hand each one, as it finishes, to a single
// file.
func (c *ShellConverter) ConvertShells(shells []object.Handle[object.Shell], name string) ([]Entity, error) {
	c.entities = make([]Entity, 0)
	c.idCounter = 1
	c.points = make(map[object.Handle[object.GlobalVertex]]int)
	c.vertices = make(map[object.Handle[object.GlobalVertex]]int)
	c.directions = make(map[geom.Vector3]int)
	c.surfaces = make(map[object.Handle[object.Surface]]int)
	c.edgeCurves = make(map[object.Handle[object.GlobalEdge]]edgeCurveRef)

	appContextID := c.addEntity(&ApplicationContext{Application: "brepkernel STEP Writer"})

	lengthUnitID := c.addEntity(&LengthUnit{})
	planeAngleUnitID := c.addEntity(&PlaneAngleUnit{})
	solidAngleUnitID := c.addEntity(&SolidAngleUnit{})

	uncertaintyID := c.addEntity(&UncertaintyMeasureWithUnit{
		Value:       1e-6,
		Unit:        lengthUnitID,
		Name:        "DISTANCE_ACCURACY_VALUE",
		Description: "Maximum model space distance between geometric entities",
	})

	geomContextID := c.addEntity(&GeometricRepresentationContext{
		ContextType:              "3D",
		CoordinateSpaceDimension: 3,
		Uncertainty:              []int{uncertaintyID},
		Units:                    []int{lengthUnitID, planeAngleUnitID, solidAngleUnitID},
	})

	productContextID := c.addEntity(&ProductContext{FrameOfReference: appContextID, DisciplineType: "mechanical"})
	productID := c.addEntity(&Product{Name: name, Description: "Generated from brepkernel", FrameOfReference: []int{productContextID}})
	pdfID := c.addEntity(&ProductDefinitionFormation{OfProduct: productID})
	pdcID := c.addEntity(&ProductDefinitionContext{FrameOfReference: appContextID, LifeCycleStage: "design"})
	pdID := c.addEntity(&ProductDefinition{Formation: pdfID, FrameOfReference: pdcID})
	pdsID := c.addEntity(&ProductDefinitionShape{Definition: pdID})

	mainPlacementID := c.createAxis2Placement(geom.Point3{}, geom.Vector3{Z: 1}, geom.Vector3{X: 1})

	items := []int{mainPlacementID}
	for _, sh := range shells {
		shell := c.store.GetShell(sh)
		faceIDs := make([]int, 0, len(shell.Faces))
		for _, fh := range shell.Faces {
			faceID, err := c.createAdvancedFace(fh)
			if err != nil {
				return nil, err
			}
			faceIDs = append(faceIDs, faceID)
		}
		closedShellID := c.addEntity(&ClosedShell{Faces: faceIDs})
		items = append(items, c.addEntity(&ManifoldSolidBrep{Outer: closedShellID}))
	}

	advBrepID := c.addEntity(&AdvancedBrepShapeRepresentation{
		Items:          items,
		ContextOfItems: geomContextID,
	})
	c.addEntity(&ShapeDefinitionRepresentation{Definition: pdsID, UsedRepresentation: advBrepID})

	return c.entities, nil
}
