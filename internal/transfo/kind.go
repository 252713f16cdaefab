package transfo

//go:generate enumer -json -type Kind -trimprefix Kind

// Kind is the class of a transform model, from the most specific to the most general
type Kind int

const (
	KindIdentity Kind = iota
	KindTranslation
	KindStretch
	KindSimilitude
	KindAffine
	KindProjective
	KindReprojection
)

// PreservesLinearity returns true if the straight lines remain straight lines
// and the image of a rectangle is bounded by the images of its four corners.
func (k Kind) PreservesLinearity() bool {
	switch k {
	case KindIdentity, KindTranslation, KindStretch, KindSimilitude, KindAffine:
		return true
	}
	return false
}

// isMatrix returns true if the kind is represented by a homogeneous matrix
func (k Kind) isMatrix() bool {
	return k != KindReprojection
}
