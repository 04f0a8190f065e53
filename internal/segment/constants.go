package segment

// TimeUnitsPerSecond converts abstract waypoint time units to seconds
// (100 units = 1 s).
const TimeUnitsPerSecond = 100.0

// MinPoints is the smallest sample count per segment. Smaller requests are
// clamped to it.
const MinPoints = 2
