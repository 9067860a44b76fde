package transfer

import (
	"github.com/chewxy/math32"

	"github.com/kpfaulkner/colour-go/util"
)

// Exponent is a gamma value carried in a type so Gamma can be used as a type argument.
type Exponent interface {
	Value() float64
}

// F2p2 is gamma 2.2.
type F2p2 struct{}

// F2p6 is gamma 2.6, the DCI-P3 cinema curve.
type F2p6 struct{}

// F1p8 is gamma 1.8.
type F1p8 struct{}

func (F2p2) Value() float64 { return 2.2 }
func (F2p6) Value() float64 { return 2.6 }
func (F1p8) Value() float64 { return 1.8 }

// Gamma is a pure power law with exponent N: encode(x) = x^(1/γ), decode(x) = x^γ.
// Negative input mirrors the curve through the origin.
type Gamma[N Exponent] struct{}

func (Gamma[N]) Encode(linear float64) float64 {
	return Power{Gamma: exponent[N]()}.Encode(linear)
}

func (Gamma[N]) Decode(encoded float64) float64 {
	return Power{Gamma: exponent[N]()}.Decode(encoded)
}

func (Gamma[N]) Encode32(linear float32) float32 {
	return Power{Gamma: exponent[N]()}.Encode32(linear)
}

func (Gamma[N]) Decode32(encoded float32) float32 {
	return Power{Gamma: exponent[N]()}.Decode32(encoded)
}

func exponent[N Exponent]() float64 {
	var n N
	return n.Value()
}

// Power is a power law whose gamma is only known at run time.
type Power struct {
	Gamma float64
}

func (p Power) Encode(linear float64) float64 {
	return util.SignedPow(linear, 1.0/p.Gamma)
}

func (p Power) Decode(encoded float64) float64 {
	return util.SignedPow(encoded, p.Gamma)
}

func (p Power) Encode32(linear float32) float32 {
	return signedPow32(linear, float32(1.0/p.Gamma))
}

func (p Power) Decode32(encoded float32) float32 {
	return signedPow32(encoded, float32(p.Gamma))
}

func signedPow32(base float32, exponent float32) float32 {
	if base < 0 {
		return -math32.Pow(-base, exponent)
	}
	return math32.Pow(base, exponent)
}
