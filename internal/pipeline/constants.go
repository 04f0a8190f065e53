package pipeline

// Below this many segments the goroutine overhead outweighs the shaping work.
const minParallelSegments = 2
