package burn

import (
	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	"github.com/beatoz/autoburn/types/xerrors"
)

// PassThroughVerifier accepts every non-empty proof.
// It stands in until a payment proof scheme is chosen and checks nothing about the content.
// It is stricter than accepting whatever proof is given: an empty proof is rejected,
// so a burn request always carries some receipt even while the receipt is not inspected.
type PassThroughVerifier struct{}

var _ ctrlertypes.IProofVerifier = PassThroughVerifier{}

func (PassThroughVerifier) Verify(proof []byte) xerrors.XError {
	if len(proof) == 0 {
		return xerrors.NewOrdinary("empty payment proof")
	}
	return nil
}
