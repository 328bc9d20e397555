package stripe

// HeightReference specifies how a height value relates to the terrain
// surface.
type HeightReference int

const (
	// HeightReferenceNone treats the height as an absolute altitude.
	HeightReferenceNone HeightReference = iota
	// HeightReferenceClampToGround ignores the numeric height and clamps
	// the surface to the terrain at draw time.
	HeightReferenceClampToGround
	// HeightReferenceRelativeToGround measures the height from the terrain
	// surface under the shape.
	HeightReferenceRelativeToGround
)

// CornerType specifies the shape of stripe corners.
type CornerType int

const (
	// CornerRounded sweeps an arc around the corner.
	CornerRounded CornerType = iota
	// CornerMitered extends the edges to a sharp point.
	CornerMitered
	// CornerBeveled cuts the corner with a single straight edge.
	CornerBeveled
)

// OffsetKind classifies which vertices of a generated mesh receive the
// render-time vertical offset.
type OffsetKind int

const (
	// OffsetNone applies no vertical offset.
	OffsetNone OffsetKind = iota
	// OffsetTop offsets only the top surface vertices.
	OffsetTop
	// OffsetAll offsets every vertex.
	OffsetAll
)

// ClassificationType specifies which kinds of scene content a ground shape
// classifies. The core passes it through without interpreting it.
type ClassificationType int

const (
	// ClassifyTerrain classifies terrain only.
	ClassifyTerrain ClassificationType = iota
	// ClassifyModels classifies 3D model content only.
	ClassifyModels
	// ClassifyBoth classifies terrain and 3D model content.
	ClassifyBoth
)
