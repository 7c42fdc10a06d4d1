package hardware

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat is a unit rotation quaternion in (x, y, z, w) component order,
// matching the on-disk configuration format.
type Quat [4]float64

// IdentityQuat is the no-rotation quaternion.
var IdentityQuat = Quat{0, 0, 0, 1}

func (q Quat) number() quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

// Rotate applies the rotation to a 3-vector.
func (q Quat) Rotate(v [3]float64) [3]float64 {
	n := q.number()
	p := quat.Number{Imag: v[0], Jmag: v[1], Kmag: v[2]}
	r := quat.Mul(quat.Mul(n, p), quat.Conj(n))
	return [3]float64{r.Imag, r.Jmag, r.Kmag}
}

// FocalPlane is a detector's projected position and orientation on the
// focal plane, as consumed by layout renderers.
type FocalPlane struct {
	// X and Y are the projected boresight offsets in degrees.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	// Gamma is the polarization orientation angle in degrees, measured
	// from the focal plane X axis.
	Gamma float64 `json:"gamma" yaml:"gamma"`
}

// FocalPlane projects the detector's pointing quaternion: the rotated
// boresight (Z) axis gives the X/Y offsets, the rotated X axis gives the
// orientation angle.
func (d *Detector) FocalPlane() FocalPlane {
	dir := d.Quat.Rotate([3]float64{0, 0, 1})
	orient := d.Quat.Rotate([3]float64{1, 0, 0})
	const degPerRad = 180.0 / math.Pi
	return FocalPlane{
		X:     math.Asin(clamp1(dir[0])) * degPerRad,
		Y:     math.Asin(clamp1(dir[1])) * degPerRad,
		Gamma: math.Atan2(orient[1], orient[0]) * degPerRad,
	}
}

// clamp1 guards Asin against rounding slightly outside [-1, 1].
func clamp1(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
