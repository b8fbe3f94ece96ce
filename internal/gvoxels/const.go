package gvoxels

type Real = float64

// Channel indices for readability.
const (
	ChDensity = 0

	// Default output resolution.
	OutWidth  = 1024
	OutHeight = 768

	// Default marching parameters. Absorption/scattering defaults live
	// in DefaultMedium (medium.go); these are the scalar knobs.
	PrimaryStep      = 0.05
	ShadowStep       = 0.05
	MinTransmittance = 1e-5

	PNGOut = "volume.png"
	Gamma  = 1.0

	// Sparse index geometry (log2 dims, VDB style).
	BrickLog2Dim = 3                            // 8^3 voxels per leaf brick
	NodeLog2Dim  = 4                            // 16^3 leaves per internal node
	BrickDim     = 1 << BrickLog2Dim            // 8
	NodeDim      = 1 << NodeLog2Dim             // 16
	NodeSpan     = NodeDim * BrickDim           // 128 voxels per internal node axis
	BrickVoxels  = BrickDim * BrickDim * BrickDim
	NodeChildren = NodeDim * NodeDim * NodeDim // 4096

	// hot-loop constants
	marchEpsilon = 1e-4 // entry offset so the boundary voxel is not re-sampled
	epsDenom     = 1e-12
)
