// Package document loads stripe entities from JSON documents.
//
// A document is an object with an optional format version and an entity
// array. Each descriptor field is a property node holding either a single
// value
//
//	{"constant": 5}
//
// or a keyframe list
//
//	{"samples": [{"time": 0, "value": 2}, {"time": 10, "value": 6}]}
//
// Numeric and color samples interpolate linearly unless the node selects
// STEP interpolation; every other sampled field holds each keyframe's
// value until the next one. Colors are written as [r, g, b] or
// [r, g, b, a] channel arrays in the [0, 1] range, or as hex strings.
// Enumerations use their upper-case names, for example
// "CLAMP_TO_GROUND" or "MITERED".
//
// Documents are checked against an embedded JSON schema before any entity
// is built, so a malformed document yields an error and no partial state.
package document

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/groundgeom/stripe"
)

// FormatVersion is the document format this package reads. Documents may
// omit the version field; when present it must match.
const FormatVersion = "1"

// Interpolation modes for sampled property nodes.
const (
	InterpolationLinear = "LINEAR"
	InterpolationStep   = "STEP"
)

var (
	// ErrInvalidDocument reports a document that failed schema validation.
	ErrInvalidDocument = errors.New("document: invalid document")

	// ErrUnsupportedVersion reports a document written in an unknown
	// format version.
	ErrUnsupportedVersion = errors.New("document: unsupported format version")
)

//go:embed schema.json
var schemaSource string

const schemaURL = "https://groundgeom.dev/stripe.schema.json"

var schema = compileSchema()

func compileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		panic(fmt.Sprintf("document: embedded schema: %v", err))
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("document: embedded schema: %v", err))
	}
	return s
}

// Document is a decoded entity document.
type Document struct {
	Version  string
	Entities []*stripe.Entity
}

// Decode parses data, validates it against the embedded schema, and builds
// the entities it describes. Validation failures wrap ErrInvalidDocument
// and carry the first schema violation; no entities are returned on any
// error.
func Decode(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("document: parse: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var f documentJSON
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("document: parse: %w", err)
	}
	if f.Version != "" && f.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, f.Version)
	}

	doc := &Document{Version: f.Version}
	for i := range f.Entities {
		e, err := buildEntity(&f.Entities[i])
		if err != nil {
			return nil, fmt.Errorf("document: entity %d (%s): %w", i, f.Entities[i].Name, err)
		}
		doc.Entities = append(doc.Entities, e)
	}
	return doc, nil
}

// The *JSON types mirror the document layout one to one. They exist only
// as an unmarshal target; Decode converts them into stripe values.

type documentJSON struct {
	Version  string       `json:"version"`
	Entities []entityJSON `json:"entities"`
}

type entityJSON struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Show         *bool          `json:"show"`
	Availability []intervalJSON `json:"availability"`
	Stripe       *stripeJSON    `json:"stripe"`
}

type intervalJSON struct {
	Start stripe.Time `json:"start"`
	Stop  stripe.Time `json:"stop"`
}

type stripeJSON struct {
	Show                    *propertyJSON `json:"show"`
	Positions               *propertyJSON `json:"positions"`
	Width                   *propertyJSON `json:"width"`
	Height                  *propertyJSON `json:"height"`
	HeightReference         *propertyJSON `json:"heightReference"`
	ExtrudedHeight          *propertyJSON `json:"extrudedHeight"`
	ExtrudedHeightReference *propertyJSON `json:"extrudedHeightReference"`
	CornerType              *propertyJSON `json:"cornerType"`
	Granularity             *propertyJSON `json:"granularity"`
	Fill                    *propertyJSON `json:"fill"`
	Material                *materialJSON `json:"material"`
	Outline                 *propertyJSON `json:"outline"`
	OutlineColor            *propertyJSON `json:"outlineColor"`
	OutlineWidth            *propertyJSON `json:"outlineWidth"`
	DistanceDisplay         *propertyJSON `json:"distanceDisplay"`
	Classification          *propertyJSON `json:"classification"`
	ZIndex                  *propertyJSON `json:"zIndex"`
}

type materialJSON struct {
	Color *propertyJSON `json:"color"`
}

type propertyJSON struct {
	Constant      json.RawMessage `json:"constant"`
	Samples       []sampleJSON    `json:"samples"`
	Interpolation string          `json:"interpolation"`
}

type sampleJSON struct {
	Time  stripe.Time     `json:"time"`
	Value json.RawMessage `json:"value"`
}

func buildEntity(src *entityJSON) (*stripe.Entity, error) {
	e := stripe.NewEntity(src.Name)
	if src.ID != "" {
		id, err := uuid.Parse(src.ID)
		if err != nil {
			return nil, fmt.Errorf("id: %w", err)
		}
		e.ID = id
	}
	if src.Show != nil {
		e.Show = *src.Show
	}
	for _, iv := range src.Availability {
		e.Availability = append(e.Availability, stripe.Interval{Start: iv.Start, Stop: iv.Stop})
	}
	if src.Stripe != nil {
		d, err := buildDescriptor(src.Stripe)
		if err != nil {
			return nil, err
		}
		e.Stripe = d
	}
	return e, nil
}

func buildDescriptor(src *stripeJSON) (*stripe.ShapeDescriptor, error) {
	d := &stripe.ShapeDescriptor{}

	var err error
	if d.Show, err = boolProperty(src.Show); err != nil {
		return nil, fmt.Errorf("show: %w", err)
	}
	if d.Positions, err = positionsProperty(src.Positions); err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}
	if d.Width, err = numberProperty(src.Width); err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	if d.Height, err = numberProperty(src.Height); err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	if d.HeightReference, err = heightReferenceProperty(src.HeightReference); err != nil {
		return nil, fmt.Errorf("heightReference: %w", err)
	}
	if d.ExtrudedHeight, err = numberProperty(src.ExtrudedHeight); err != nil {
		return nil, fmt.Errorf("extrudedHeight: %w", err)
	}
	if d.ExtrudedHeightReference, err = heightReferenceProperty(src.ExtrudedHeightReference); err != nil {
		return nil, fmt.Errorf("extrudedHeightReference: %w", err)
	}
	if d.CornerType, err = cornerTypeProperty(src.CornerType); err != nil {
		return nil, fmt.Errorf("cornerType: %w", err)
	}
	if d.Granularity, err = numberProperty(src.Granularity); err != nil {
		return nil, fmt.Errorf("granularity: %w", err)
	}
	if d.Fill, err = boolProperty(src.Fill); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	if d.Outline, err = boolProperty(src.Outline); err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	if d.OutlineColor, err = colorProperty(src.OutlineColor); err != nil {
		return nil, fmt.Errorf("outlineColor: %w", err)
	}
	if d.OutlineWidth, err = numberProperty(src.OutlineWidth); err != nil {
		return nil, fmt.Errorf("outlineWidth: %w", err)
	}
	if d.DistanceDisplay, err = distanceDisplayProperty(src.DistanceDisplay); err != nil {
		return nil, fmt.Errorf("distanceDisplay: %w", err)
	}
	if d.Classification, err = classificationProperty(src.Classification); err != nil {
		return nil, fmt.Errorf("classification: %w", err)
	}
	if d.ZIndex, err = intProperty(src.ZIndex); err != nil {
		return nil, fmt.Errorf("zIndex: %w", err)
	}

	if src.Material != nil {
		color, err := colorProperty(src.Material.Color)
		if err != nil {
			return nil, fmt.Errorf("material.color: %w", err)
		}
		d.Material = stripe.ColorMaterial{Color: color}
	}
	return d, nil
}

// buildProperty turns a property node into a stripe.Property. A nil node
// yields a nil property, keeping the descriptor field unset.
func buildProperty[T any](p *propertyJSON, decode func(json.RawMessage) (T, error), lerp stripe.LerpFunc[T]) (stripe.Property[T], error) {
	if p == nil {
		return nil, nil
	}
	if p.Constant != nil {
		v, err := decode(p.Constant)
		if err != nil {
			return nil, err
		}
		return stripe.Const(v), nil
	}
	frames := make([]stripe.Keyframe[T], 0, len(p.Samples))
	for _, s := range p.Samples {
		v, err := decode(s.Value)
		if err != nil {
			return nil, fmt.Errorf("sample at t=%v: %w", s.Time, err)
		}
		frames = append(frames, stripe.Keyframe[T]{Time: s.Time, Value: v})
	}
	if p.Interpolation == InterpolationStep {
		lerp = nil
	}
	return stripe.NewSampled(frames, lerp), nil
}

func numberProperty(p *propertyJSON) (stripe.Property[float64], error) {
	return buildProperty(p, decodeNumber, stripe.LerpFloat64)
}

func intProperty(p *propertyJSON) (stripe.Property[int], error) {
	return buildProperty(p, decodeInt, nil)
}

func boolProperty(p *propertyJSON) (stripe.Property[bool], error) {
	return buildProperty(p, decodeBool, nil)
}

func colorProperty(p *propertyJSON) (stripe.Property[stripe.Color], error) {
	return buildProperty(p, decodeColor, stripe.LerpColor)
}

func positionsProperty(p *propertyJSON) (stripe.Property[[]mgl64.Vec3], error) {
	return buildProperty(p, decodePositions, nil)
}

func heightReferenceProperty(p *propertyJSON) (stripe.Property[stripe.HeightReference], error) {
	return buildProperty(p, decodeHeightReference, nil)
}

func cornerTypeProperty(p *propertyJSON) (stripe.Property[stripe.CornerType], error) {
	return buildProperty(p, decodeCornerType, nil)
}

func classificationProperty(p *propertyJSON) (stripe.Property[stripe.ClassificationType], error) {
	return buildProperty(p, decodeClassification, nil)
}

func distanceDisplayProperty(p *propertyJSON) (stripe.Property[stripe.DistanceDisplayCondition], error) {
	return buildProperty(p, decodeDistanceDisplay, nil)
}

func decodeNumber(raw json.RawMessage) (float64, error) {
	var v float64
	err := json.Unmarshal(raw, &v)
	return v, err
}

func decodeInt(raw json.RawMessage) (int, error) {
	var v int
	err := json.Unmarshal(raw, &v)
	return v, err
}

func decodeBool(raw json.RawMessage) (bool, error) {
	var v bool
	err := json.Unmarshal(raw, &v)
	return v, err
}

func decodeColor(raw json.RawMessage) (stripe.Color, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return stripe.Color{}, err
		}
		return stripe.Hex(s), nil
	}
	var ch []float64
	if err := json.Unmarshal(raw, &ch); err != nil {
		return stripe.Color{}, err
	}
	switch len(ch) {
	case 3:
		return stripe.RGB(ch[0], ch[1], ch[2]), nil
	case 4:
		return stripe.RGBA(ch[0], ch[1], ch[2], ch[3]), nil
	}
	return stripe.Color{}, fmt.Errorf("color needs 3 or 4 channels, got %d", len(ch))
}

func decodePositions(raw json.RawMessage) ([]mgl64.Vec3, error) {
	var pts []mgl64.Vec3
	err := json.Unmarshal(raw, &pts)
	return pts, err
}

func decodeHeightReference(raw json.RawMessage) (stripe.HeightReference, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	switch s {
	case "NONE":
		return stripe.HeightReferenceNone, nil
	case "CLAMP_TO_GROUND":
		return stripe.HeightReferenceClampToGround, nil
	case "RELATIVE_TO_GROUND":
		return stripe.HeightReferenceRelativeToGround, nil
	}
	return 0, fmt.Errorf("unknown height reference %q", s)
}

func decodeCornerType(raw json.RawMessage) (stripe.CornerType, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	switch s {
	case "ROUNDED":
		return stripe.CornerRounded, nil
	case "MITERED":
		return stripe.CornerMitered, nil
	case "BEVELED":
		return stripe.CornerBeveled, nil
	}
	return 0, fmt.Errorf("unknown corner type %q", s)
}

func decodeClassification(raw json.RawMessage) (stripe.ClassificationType, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	switch s {
	case "TERRAIN":
		return stripe.ClassifyTerrain, nil
	case "MODELS":
		return stripe.ClassifyModels, nil
	case "BOTH":
		return stripe.ClassifyBoth, nil
	}
	return 0, fmt.Errorf("unknown classification %q", s)
}

func decodeDistanceDisplay(raw json.RawMessage) (stripe.DistanceDisplayCondition, error) {
	var v struct {
		Near float64 `json:"near"`
		Far  float64 `json:"far"`
	}
	err := json.Unmarshal(raw, &v)
	return stripe.DistanceDisplayCondition{Near: v.Near, Far: v.Far}, err
}
