package transfo

// Chain is a sequence of models applied in order.
// Consecutive matrix models are merged when the chain is built, so that
// a chain only holds more than one model when a Reprojection is involved.
type Chain []Model

// Compose builds the chain applying models in order, then simplifies it with tol
func Compose(tol float64, models ...Model) (Chain, error) {
	var c Chain
	for _, m := range models {
		if m.IsIdentity() {
			continue
		}
		if n := len(c); n > 0 && c[n-1].kind.isMatrix() && m.kind.isMatrix() {
			merged, err := c[n-1].Then(m)
			if err != nil {
				return nil, err
			}
			c[n-1] = merged.Simplified(tol)
			if c[n-1].IsIdentity() {
				c = c[:n-1]
			}
			continue
		}
		c = append(c, m.Simplified(tol))
	}
	return c, nil
}

// Model returns the chain as a single model, or false if it holds more than one model
func (c Chain) Model() (Model, bool) {
	switch len(c) {
	case 0:
		return Identity(), true
	case 1:
		return c[0], true
	}
	return Model{}, false
}

// PreservesLinearity returns true if every model of the chain preserves linearity
func (c Chain) PreservesLinearity() bool {
	for _, m := range c {
		if !m.PreservesLinearity() {
			return false
		}
	}
	return true
}

// IsIdentity returns true for an empty chain
func (c Chain) IsIdentity() bool {
	return len(c) == 0
}

// Transform applies the chain to (x, y)
func (c Chain) Transform(x, y float64) (float64, float64, error) {
	var err error
	for _, m := range c {
		if x, y, err = m.Transform(x, y); err != nil {
			return 0, 0, err
		}
	}
	return x, y, nil
}

// TransformFlat applies the chain in place to flat XY coordinates
func (c Chain) TransformFlat(flat []float64) error {
	for _, m := range c {
		if err := m.TransformFlat(flat); err != nil {
			return err
		}
	}
	return nil
}

// Inverse returns the chain mapping back the output of c to its input
func (c Chain) Inverse() (Chain, error) {
	inv := make(Chain, len(c))
	for i, m := range c {
		im, err := m.Inverse()
		if err != nil {
			return nil, err
		}
		inv[len(c)-1-i] = im
	}
	return inv, nil
}
