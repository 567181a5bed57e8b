package nnet

import "math"

// FastSigmoid is a cheap rational approximation of the logistic sigmoid:
//
//	f(x) = 0.5·x / (|x| + 1) + 0.5
//
// It maps the real line onto (0, 1) with f(0) = 0.5.
func FastSigmoid(x float64) float64 {
	return 0.5*x/(math.Abs(x)+1) + 0.5
}

// FastSigmoidDerivative returns 0.5 / (|y| + 1)², evaluated at an activation
// y rather than at the pre-activation input.
func FastSigmoidDerivative(y float64) float64 {
	d := math.Abs(y) + 1
	return 0.5 / (d * d)
}
