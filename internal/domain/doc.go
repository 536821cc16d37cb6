// Package domain models the storm controller: tunable wave parameters read
// from a flat text file, console commands that summon a storm, and the
// per-tick wave weight math applied to the host ocean.
//
// # Tunables File
//
// One entry per line in the form "<key>:<value>". The line is split on its
// first colon; key and value are trimmed of surrounding whitespace, so files
// saved with CRLF line endings parse the same as LF files.
//
//	windSpeedWaveFactor:0.2
//	waveInertiaWindScale:0.3
//	waveWeight:1
//	waveDistanceToLandIncrease:0
//	smallWavesValueMultiplier:0.3
//
// Known keys and their defaults:
//
//	windSpeedWaveFactor         0.2  wind effect on wave strength
//	waveInertiaWindScale        0.3  wind effect on wave inertia (very sensitive)
//	waveWeight                  1.0  weight applied to both inertia wave channels
//	waveDistanceToLandIncrease  0.0  extra distance-to-land used for wave sizing
//	smallWavesValueMultiplier   0.3  multiplier for the waves between swells
//
// Blank lines and lines starting with "#" are ignored. A line without a
// colon is skipped and reported; it never aborts the rest of the file.
// Unknown keys are ignored. A value that does not parse as a finite float
// leaves the previous value in place.
//
// Key lookup defaults to substring containment: a requested key matches the
// first entry whose key contains it. This mirrors how existing config files
// were read and can be switched to exact matching with [MatchExact].
//
// # Console Grammar
//
//	givemestorm        grant a storm with the host's default radius
//	givemestorm_<N>    grant a storm of radius N (N a positive 32-bit integer);
//	                   particle spread distance becomes N + 2500
//
// Any other text containing "givemestorm_" is rejected with the response
// "Invalid StormRadius Value". Unrelated text is not a command.
//
// # Wave Weights
//
// Each wave tick blends two opposing inertia wave channels by the host's
// blend factor t. See [ComputeWaves] for the formula.
package domain
