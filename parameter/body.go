package parameter

// Body Segment - Construction Defaults
const (
	// BodySizeDefault is the cube edge (or sphere diameter) of a generated segment
	BodySizeDefault = 1.0

	// AppendageDiameterFactorMin/Max bound the appendage diameter as a fraction of body size
	AppendageDiameterFactorMin = 0.05
	AppendageDiameterFactorMax = 0.1

	// AppendageLengthFactorMin/Max bound the appendage length as a fraction of body size
	AppendageLengthFactorMin = 0.5
	AppendageLengthFactorMax = 2.0

	// FillFactorDefault is the fraction of mount slots populated
	FillFactorDefault = 0.25
)

// Appendage Placement
const (
	// AppendageSpacingFactor multiplies the appendage diameter to get slot pitch
	// Adjacent appendages are separated by at least one diameter
	AppendageSpacingFactor = 2.0

	// MaxSlotCount caps the mount slots of one segment
	// Keeps slot totals and the retry draw budget (total²) inside int range
	MaxSlotCount = 1 << 30

	// StrategyDefault names the slot selection strategy used when none is configured
	StrategyDefault = "shuffle"

	// ShapeDefault names the segment shape used when none is configured
	ShapeDefault = "cube"
)
