package vesting

import (
	"io"

	"github.com/gogo/protobuf/proto"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/orm"
)

// Allocation is a single time locked grant. The wire format is protobuf,
// described in codec.proto. The codec is written out explicitly so that the
// build does not depend on protoc.
type Allocation struct {
	Beneficiary ember.Address `json:"beneficiary"`
	Total       coin.Amount   `json:"total"`
	CycleDays   int64         `json:"cycle_days"`
	Released    coin.Amount   `json:"released"`
}

var _ proto.Message = (*Allocation)(nil)
var _ orm.CloneableData = (*Allocation)(nil)

func (a *Allocation) Reset()         { *a = Allocation{} }
func (a *Allocation) String() string { return proto.CompactTextString(a) }
func (*Allocation) ProtoMessage()    {}

// Validate ensures the allocation is consistent.
func (a *Allocation) Validate() error {
	if err := a.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if !a.Total.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "total must be positive")
	}
	if a.CycleDays < 1 {
		return errors.Wrap(errors.ErrInput, "cycle must span at least one day")
	}
	if err := a.Released.Validate(); err != nil {
		return errors.Wrap(err, "released")
	}
	if a.Released > a.Total {
		return errors.Wrap(errors.ErrState, "released exceeds total")
	}
	return nil
}

// Copy makes a deep copy of the allocation.
func (a *Allocation) Copy() orm.CloneableData {
	return &Allocation{
		Beneficiary: a.Beneficiary.Clone(),
		Total:       a.Total,
		CycleDays:   a.CycleDays,
		Released:    a.Released,
	}
}

// Marshal implements ember.Persistent.
func (a *Allocation) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if len(a.Beneficiary) != 0 {
		_ = buf.EncodeVarint(1<<3 | 2) // beneficiary, bytes
		_ = buf.EncodeRawBytes(a.Beneficiary)
	}
	if a.Total != 0 {
		_ = buf.EncodeVarint(2<<3 | 0) // total, varint
		_ = buf.EncodeVarint(uint64(a.Total))
	}
	if a.CycleDays != 0 {
		_ = buf.EncodeVarint(3<<3 | 0) // cycle_days, varint
		_ = buf.EncodeVarint(uint64(a.CycleDays))
	}
	if a.Released != 0 {
		_ = buf.EncodeVarint(4<<3 | 0) // released, varint
		_ = buf.EncodeVarint(uint64(a.Released))
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (a *Allocation) Unmarshal(raw []byte) error {
	*a = Allocation{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "allocation tag")
		}
		switch tag {
		case 1<<3 | 2:
			bz, err := buf.DecodeRawBytes(true)
			if err != nil {
				return errors.Wrap(err, "beneficiary")
			}
			a.Beneficiary = bz
		case 2<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "total")
			}
			a.Total = coin.Amount(val)
		case 3<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "cycle_days")
			}
			a.CycleDays = int64(val)
		case 4<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "released")
			}
			a.Released = coin.Amount(val)
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}
