package stripe

import "github.com/gogpu/gputypes"

// VertexLayout selects which attributes each vertex of a mesh carries.
// Position is always present; the interleaved order is position, normal,
// texcoord.
type VertexLayout struct {
	Normal   bool
	TexCoord bool
}

// LayoutForMaterial derives the vertex layout a material needs. Color
// materials shade with a per-instance color and need position and normal
// only; textured materials additionally need texture coordinates.
func LayoutForMaterial(m Material) VertexLayout {
	if _, ok := m.(TexturedMaterial); ok {
		return VertexLayout{Normal: true, TexCoord: true}
	}
	return VertexLayout{Normal: true}
}

// FloatsPerVertex returns how many float32 values one vertex occupies.
func (l VertexLayout) FloatsPerVertex() int {
	n := 3
	if l.Normal {
		n += 3
	}
	if l.TexCoord {
		n += 2
	}
	return n
}

// Stride returns the byte stride of one interleaved vertex.
func (l VertexLayout) Stride() uint64 {
	return uint64(l.FloatsPerVertex()) * 4
}

// BufferLayout returns the wire-level description of the interleaved vertex
// buffer: float32x3 position at location(0), then float32x3 normal and
// float32x2 texcoord at the following locations when present.
func (l VertexLayout) BufferLayout() gputypes.VertexBufferLayout {
	attrs := []gputypes.VertexAttribute{
		{
			Format:         gputypes.VertexFormatFloat32x3,
			Offset:         0,
			ShaderLocation: 0,
		},
	}
	offset := uint64(12)
	location := uint32(1)
	if l.Normal {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32x3,
			Offset:         offset,
			ShaderLocation: location,
		})
		offset += 12
		location++
	}
	if l.TexCoord {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32x2,
			Offset:         offset,
			ShaderLocation: location,
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: l.Stride(),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// Mesh is the renderable triangle-list output of a GeometryFactory.
type Mesh struct {
	// Layout describes the interleaved vertex data.
	Layout VertexLayout
	// Vertices holds the interleaved per-vertex values.
	Vertices []float32
	// Indices are triangle-list indices into Vertices.
	Indices []uint32
	// Bounds is the XY extent of the generated positions.
	Bounds Rectangle
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / m.Layout.FloatsPerVertex()
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IndexFormat reports how Indices are encoded.
func (m *Mesh) IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// Topology reports how Indices assemble primitives.
func (m *Mesh) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}
