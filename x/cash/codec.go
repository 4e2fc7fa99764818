package cash

import (
	"io"

	"github.com/gogo/protobuf/proto"

	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
)

// The wire format of all models is protobuf, described in codec.proto. The
// codecs are written out explicitly so that the build does not depend on
// protoc; the messages are small and flat enough that generated code would
// not pull its weight.

// Set stores the balance of a single wallet.
type Set struct {
	Balance coin.Amount `json:"balance"`
}

var _ proto.Message = (*Set)(nil)

func (s *Set) Reset()         { *s = Set{} }
func (s *Set) String() string { return proto.CompactTextString(s) }
func (*Set) ProtoMessage()    {}

// Marshal implements ember.Persistent.
func (s *Set) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if s.Balance != 0 {
		_ = buf.EncodeVarint(1<<3 | 0) // balance, varint
		_ = buf.EncodeVarint(uint64(s.Balance))
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (s *Set) Unmarshal(raw []byte) error {
	*s = Set{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "set tag")
		}
		switch tag {
		case 1<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "balance")
			}
			s.Balance = coin.Amount(val)
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}

// Supply tracks the total amount of tokens issued.
type Supply struct {
	Total coin.Amount `json:"total"`
}

var _ proto.Message = (*Supply)(nil)

func (s *Supply) Reset()         { *s = Supply{} }
func (s *Supply) String() string { return proto.CompactTextString(s) }
func (*Supply) ProtoMessage()    {}

// Marshal implements ember.Persistent.
func (s *Supply) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if s.Total != 0 {
		_ = buf.EncodeVarint(1<<3 | 0) // total, varint
		_ = buf.EncodeVarint(uint64(s.Total))
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (s *Supply) Unmarshal(raw []byte) error {
	*s = Supply{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "supply tag")
		}
		switch tag {
		case 1<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "total")
			}
			s.Total = coin.Amount(val)
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}
