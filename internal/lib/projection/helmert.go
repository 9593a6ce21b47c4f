package projection

import "gonum.org/v1/gonum/mat"

// helmert is a 7-parameter similarity transform between two geocentric
// frames, applied as rotate, scale, translate.
type helmert struct {
	rotation    *mat.Dense
	scale       float64
	translation *mat.VecDense
}

func newHelmert(rotation []float64, scale float64, translation []float64) *helmert {
	return &helmert{
		rotation:    mat.NewDense(3, 3, rotation),
		scale:       scale,
		translation: mat.NewVecDense(3, translation),
	}
}

func (h *helmert) apply(x, y, z float64) (float64, float64, float64) {
	var result mat.VecDense
	result.MulVec(h.rotation, mat.NewVecDense(3, []float64{x, y, z}))
	result.ScaleVec(h.scale, &result)
	result.AddVec(&result, h.translation)
	return result.AtVec(0), result.AtVec(1), result.AtVec(2)
}

const helmertScale = 0.9999933

// besselToWgs84 moves Bessel based geocentric coordinates into the WGS-84 frame.
var besselToWgs84 = newHelmert([]float64{
	1, 0.0000119021759, 0.000000218166156,
	-0.0000119021759, 1, -0.000000979323636,
	-0.000000218166156, 0.0000009793236, 1,
}, helmertScale, []float64{598.095, 73.707, 418.197})

// wgs84ToBessel is the reverse of besselToWgs84.
var wgs84ToBessel = newHelmert([]float64{
	1, -0.0000119021759, -0.000000218166156,
	0.0000119021759, 1, 0.000000979323636,
	0.000000218166156, -0.0000009793236, 1,
}, helmertScale, []float64{-598.095, -73.707, -418.197})
