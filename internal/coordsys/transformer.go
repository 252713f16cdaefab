package coordsys

// Transform maps coordinates of a coordinate system into another
type Transform interface {
	Transform(x, y float64) (float64, float64, error)
	// TransformFlat transforms flat XY coordinates in place
	TransformFlat(flat []float64) error
	// PreservesLinearity returns true if the image of a rectangle is bounded by the images of its corners
	PreservesLinearity() bool
	IsIdentity() bool
}

// Transformer provides the transform between two coordinate systems
type Transformer interface {
	TransformBetween(from, to *CoordSys) (Transform, error)
}

// Graph is the Transformer following the reference links between coordinate systems
type Graph struct{}

// TransformBetween implements Transformer
func (Graph) TransformBetween(from, to *CoordSys) (Transform, error) {
	chain, err := from.PathTo(to)
	if err != nil {
		return nil, err
	}
	return chain, nil
}

// DefaultTransformer is the Transformer used when none is provided
var DefaultTransformer Transformer = Graph{}
