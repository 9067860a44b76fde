package transfer

import "fmt"

// Enumerated transfer function ids, numbered as in the JPEG XL colour encoding bundle. Ids below
// 1<<24 are raw gamma values: the encoding exponent scaled by 1e7, so 4545455 is gamma 2.2.
const (
	TF_BT709   uint32 = 1 + (1 << 24)
	TF_UNKNOWN uint32 = 2 + (1 << 24)
	TF_LINEAR  uint32 = 8 + (1 << 24)
	TF_SRGB    uint32 = 13 + (1 << 24)
	TF_PQ      uint32 = 16 + (1 << 24)
	TF_DCI     uint32 = 17 + (1 << 24)
	TF_HLG     uint32 = 18 + (1 << 24)
)

func ValidateTransfer(transfer uint32) bool {
	if transfer < (1 << 24) {
		return transfer > 0 && transfer <= 10_000_000
	}
	switch transfer {
	case TF_BT709, TF_UNKNOWN, TF_LINEAR, TF_SRGB, TF_PQ, TF_DCI, TF_HLG:
		return true
	}
	return false
}

// GetTransferFunction returns the curve for an id. PQ, HLG and unknown curves are valid ids but
// have no implementation here.
func GetTransferFunction(transfer uint32) (TransferFn, error) {
	if !ValidateTransfer(transfer) {
		return nil, fmt.Errorf("illegal transfer function %d", transfer)
	}
	if transfer < (1 << 24) {
		return Power{Gamma: 1e7 / float64(transfer)}, nil
	}
	switch transfer {
	case TF_BT709:
		return Bt709{}, nil
	case TF_LINEAR:
		return Linear{}, nil
	case TF_SRGB:
		return Srgb{}, nil
	case TF_DCI:
		return Gamma[F2p6]{}, nil
	}
	return nil, fmt.Errorf("unsupported transfer function %d", transfer)
}
