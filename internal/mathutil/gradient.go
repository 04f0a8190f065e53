package mathutil

// Gradient computes dy/dx of samples y taken at (possibly non-uniform)
// coordinates x and writes the result into dst, which is returned. If dst
// is nil a new slice is allocated.
//
// Interior points use the second-order centered difference for uneven
// spacing (hs = x[i]-x[i-1], hd = x[i+1]-x[i]):
//
//	dy[i] = (hs²·y[i+1] + (hd²-hs²)·y[i] - hd²·y[i-1]) / (hs·hd·(hs+hd))
//
// The two endpoints use first-order one-sided differences. With uniform
// spacing this reduces to (y[i+1]-y[i-1]) / 2h.
//
// Repeated coordinates divide by zero and yield ±Inf or NaN, following IEEE
// arithmetic. Series shorter than two points have a zero gradient.
func Gradient(dst, y, x []float64) []float64 {
	n := len(y)
	if len(x) != n {
		panic("mathutil: gradient length mismatch")
	}
	if dst == nil {
		dst = make([]float64, n)
	}
	if n < minGradientPoints {
		for i := range dst {
			dst[i] = 0
		}
		return dst
	}

	dst[0] = (y[1] - y[0]) / (x[1] - x[0])
	dst[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

	for i := 1; i < n-1; i++ {
		hs := x[i] - x[i-1]
		hd := x[i+1] - x[i]
		a := -hd / (hs * (hs + hd))
		b := (hd - hs) / (hs * hd)
		c := hs / (hd * (hs + hd))
		dst[i] = a*y[i-1] + b*y[i] + c*y[i+1]
	}

	return dst
}

// Derivatives returns the first three derivatives of position with respect
// to time, each obtained by differentiating the previous one.
func Derivatives(pos, t []float64) (vel, acc, jerk []float64) {
	vel = Gradient(nil, pos, t)
	acc = Gradient(nil, vel, t)
	jerk = Gradient(nil, acc, t)
	return vel, acc, jerk
}
