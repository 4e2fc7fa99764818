package redist

import (
	"io"

	"github.com/gogo/protobuf/proto"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
	"github.com/emberfi/ember/orm"
)

// Explicit protobuf codecs, wire format described in codec.proto.

// HolderInfo is one entry of the holder registry.
type HolderInfo struct {
	Address ember.Address `json:"address"`
}

var _ proto.Message = (*HolderInfo)(nil)
var _ orm.CloneableData = (*HolderInfo)(nil)

func (h *HolderInfo) Reset()         { *h = HolderInfo{} }
func (h *HolderInfo) String() string { return proto.CompactTextString(h) }
func (*HolderInfo) ProtoMessage()    {}

// Validate ensures the entry names an account.
func (h *HolderInfo) Validate() error {
	return h.Address.Validate()
}

// Copy makes a deep copy of the entry.
func (h *HolderInfo) Copy() orm.CloneableData {
	return &HolderInfo{Address: h.Address.Clone()}
}

// Marshal implements ember.Persistent.
func (h *HolderInfo) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if len(h.Address) != 0 {
		_ = buf.EncodeVarint(1<<3 | 2) // address, bytes
		_ = buf.EncodeRawBytes(h.Address)
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (h *HolderInfo) Unmarshal(raw []byte) error {
	*h = HolderInfo{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "holder tag")
		}
		switch tag {
		case 1<<3 | 2:
			bz, err := buf.DecodeRawBytes(true)
			if err != nil {
				return errors.Wrap(err, "address")
			}
			h.Address = bz
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}

// BurnInfo is one entry of the burn ledger.
type BurnInfo struct {
	Address     ember.Address `json:"address"`
	Contributed coin.Amount   `json:"contributed"`
}

var _ proto.Message = (*BurnInfo)(nil)
var _ orm.CloneableData = (*BurnInfo)(nil)

func (b *BurnInfo) Reset()         { *b = BurnInfo{} }
func (b *BurnInfo) String() string { return proto.CompactTextString(b) }
func (*BurnInfo) ProtoMessage()    {}

// Validate ensures the entry names an account and a sane contribution.
func (b *BurnInfo) Validate() error {
	if err := b.Address.Validate(); err != nil {
		return err
	}
	return b.Contributed.Validate()
}

// Copy makes a deep copy of the entry.
func (b *BurnInfo) Copy() orm.CloneableData {
	return &BurnInfo{
		Address:     b.Address.Clone(),
		Contributed: b.Contributed,
	}
}

// Marshal implements ember.Persistent.
func (b *BurnInfo) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if len(b.Address) != 0 {
		_ = buf.EncodeVarint(1<<3 | 2) // address, bytes
		_ = buf.EncodeRawBytes(b.Address)
	}
	if b.Contributed != 0 {
		_ = buf.EncodeVarint(2<<3 | 0) // contributed, varint
		_ = buf.EncodeVarint(uint64(b.Contributed))
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (b *BurnInfo) Unmarshal(raw []byte) error {
	*b = BurnInfo{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "burn tag")
		}
		switch tag {
		case 1<<3 | 2:
			bz, err := buf.DecodeRawBytes(true)
			if err != nil {
				return errors.Wrap(err, "address")
			}
			b.Address = bz
		case 2<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "contributed")
			}
			b.Contributed = coin.Amount(val)
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}

// WeightInfo is one entry of the receipt book.
type WeightInfo struct {
	Weight coin.Amount `json:"weight"`
}

var _ proto.Message = (*WeightInfo)(nil)

func (w *WeightInfo) Reset()         { *w = WeightInfo{} }
func (w *WeightInfo) String() string { return proto.CompactTextString(w) }
func (*WeightInfo) ProtoMessage()    {}

// Marshal implements ember.Persistent.
func (w *WeightInfo) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if w.Weight != 0 {
		_ = buf.EncodeVarint(1<<3 | 0) // weight, varint
		_ = buf.EncodeVarint(uint64(w.Weight))
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (w *WeightInfo) Unmarshal(raw []byte) error {
	*w = WeightInfo{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "weight tag")
		}
		switch tag {
		case 1<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "weight")
			}
			w.Weight = coin.Amount(val)
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}
