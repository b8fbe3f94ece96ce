package gvoxels

var (
	Debug = false // set to true for verbose debug output
	// Compile time check that the sparse tree satisfies the locator contract
	_ VolumeIndex = (*Tree)(nil)
)
