package parameter

// Export
const (
	// ExportVersion is written into every exported document
	ExportVersion = "1.0"

	// ExportCompressedSuffix marks zstd-compressed export files
	ExportCompressedSuffix = ".zst"

	// ExportBufferSize is the buffered writer size in front of the compressor
	ExportBufferSize = 64 * 1024
)

// Plot
const (
	// PlotWidthInches/HeightInches size the PNG rendering
	PlotWidthInches  = 10
	PlotHeightInches = 8

	// PlotGlyphRadiusPoints is the scatter marker radius
	PlotGlyphRadiusPoints = 3
)
