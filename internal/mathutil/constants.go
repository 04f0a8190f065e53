package mathutil

// minGradientPoints is the shortest series with a defined difference.
const minGradientPoints = 2
