package cdkeygen

// CapacityCeiling clamps capacity estimates. Anything at or above it is
// treated as effectively unbounded and disables the unique-mode pre-check.
const CapacityCeiling uint64 = 1_000_000_000_000_000_000 // 10^18

// EstimateCapacity approximates alphabetSize^keyspaceLen, the upper bound on
// distinct producible keys. The multiplication saturates: once the running
// product would cross CapacityCeiling the ceiling is returned without
// finishing the exponentiation. Used only as a pre-flight sanity check,
// never as an exact count.
func EstimateCapacity(alphabetSize, keyspaceLen int) uint64 {
	if alphabetSize <= 0 {
		return 0
	}
	a := uint64(alphabetSize)
	est := uint64(1)
	for i := 0; i < keyspaceLen; i++ {
		if est > CapacityCeiling/a {
			return CapacityCeiling
		}
		est *= a
	}
	if est >= CapacityCeiling {
		return CapacityCeiling
	}
	return est
}
