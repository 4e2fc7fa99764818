package token

import (
	"io"

	"github.com/gogo/protobuf/proto"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/errors"
)

// The wire format of all models and messages is protobuf, described in
// codec.proto. The codecs are written out explicitly so that the build does
// not depend on protoc.

// Configuration is the gconf singleton of this package.
type Configuration struct {
	Owner           ember.Address   `json:"owner"`
	Pair            ember.Address   `json:"pair"`
	Treasury        ember.Address   `json:"treasury"`
	LpRate          int32           `json:"lp_rate"`
	BurnRate        int32           `json:"burn_rate"`
	BurnLpRate      int32           `json:"burn_lp_rate"`
	FundRate        int32           `json:"fund_rate"`
	LaunchAt        ember.UnixTime  `json:"launch_at"`
	LpThreshold     coin.Amount     `json:"lp_threshold"`
	BurnThreshold   coin.Amount     `json:"burn_threshold"`
	MinHolderWeight coin.Amount     `json:"min_holder_weight"`
	IterationBudget int64           `json:"iteration_budget"`
	FeeExempt       []ember.Address `json:"fee_exempt"`
	RewardExcluded  []ember.Address `json:"reward_excluded"`
	Contracts       []ember.Address `json:"contracts"`
}

var _ proto.Message = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

// GetOwner implements gconf.OwnedConfig.
func (c *Configuration) GetOwner() ember.Address {
	return c.Owner
}

// Marshal implements ember.Persistent.
func (c *Configuration) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	writeBytes(buf, 1, c.Owner)
	writeBytes(buf, 2, c.Pair)
	writeBytes(buf, 3, c.Treasury)
	writeVarint(buf, 4, int64(c.LpRate))
	writeVarint(buf, 5, int64(c.BurnRate))
	writeVarint(buf, 6, int64(c.BurnLpRate))
	writeVarint(buf, 7, int64(c.FundRate))
	writeVarint(buf, 8, int64(c.LaunchAt))
	writeVarint(buf, 9, int64(c.LpThreshold))
	writeVarint(buf, 10, int64(c.BurnThreshold))
	writeVarint(buf, 11, int64(c.MinHolderWeight))
	writeVarint(buf, 12, c.IterationBudget)
	for _, addr := range c.FeeExempt {
		writeBytes(buf, 13, addr)
	}
	for _, addr := range c.RewardExcluded {
		writeBytes(buf, 14, addr)
	}
	for _, addr := range c.Contracts {
		writeBytes(buf, 15, addr)
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (c *Configuration) Unmarshal(raw []byte) error {
	*c = Configuration{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "configuration tag")
		}
		switch tag {
		case 1<<3 | 2:
			if c.Owner, err = readBytes(buf); err != nil {
				return errors.Wrap(err, "owner")
			}
		case 2<<3 | 2:
			if c.Pair, err = readBytes(buf); err != nil {
				return errors.Wrap(err, "pair")
			}
		case 3<<3 | 2:
			if c.Treasury, err = readBytes(buf); err != nil {
				return errors.Wrap(err, "treasury")
			}
		case 4<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "lp rate")
			}
			c.LpRate = int32(val)
		case 5<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "burn rate")
			}
			c.BurnRate = int32(val)
		case 6<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "burn lp rate")
			}
			c.BurnLpRate = int32(val)
		case 7<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "fund rate")
			}
			c.FundRate = int32(val)
		case 8<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "launch time")
			}
			c.LaunchAt = ember.UnixTime(val)
		case 9<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "lp threshold")
			}
			c.LpThreshold = coin.Amount(val)
		case 10<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "burn threshold")
			}
			c.BurnThreshold = coin.Amount(val)
		case 11<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "min holder weight")
			}
			c.MinHolderWeight = coin.Amount(val)
		case 12<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "iteration budget")
			}
			c.IterationBudget = int64(val)
		case 13<<3 | 2:
			addr, err := readBytes(buf)
			if err != nil {
				return errors.Wrap(err, "fee exempt")
			}
			c.FeeExempt = append(c.FeeExempt, addr)
		case 14<<3 | 2:
			addr, err := readBytes(buf)
			if err != nil {
				return errors.Wrap(err, "reward excluded")
			}
			c.RewardExcluded = append(c.RewardExcluded, addr)
		case 15<<3 | 2:
			addr, err := readBytes(buf)
			if err != nil {
				return errors.Wrap(err, "contracts")
			}
			c.Contracts = append(c.Contracts, addr)
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}

// SendMsg moves tokens between two accounts through the interceptor.
type SendMsg struct {
	Src    ember.Address `json:"src"`
	Dest   ember.Address `json:"dest"`
	Amount coin.Amount   `json:"amount"`
	Memo   string        `json:"memo,omitempty"`
}

var _ proto.Message = (*SendMsg)(nil)

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

// Marshal implements ember.Persistent.
func (m *SendMsg) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	writeBytes(buf, 1, m.Src)
	writeBytes(buf, 2, m.Dest)
	writeVarint(buf, 3, int64(m.Amount))
	if m.Memo != "" {
		_ = buf.EncodeVarint(4<<3 | 2)
		_ = buf.EncodeStringBytes(m.Memo)
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (m *SendMsg) Unmarshal(raw []byte) error {
	*m = SendMsg{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "send tag")
		}
		switch tag {
		case 1<<3 | 2:
			if m.Src, err = readBytes(buf); err != nil {
				return errors.Wrap(err, "src")
			}
		case 2<<3 | 2:
			if m.Dest, err = readBytes(buf); err != nil {
				return errors.Wrap(err, "dest")
			}
		case 3<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "amount")
			}
			m.Amount = coin.Amount(val)
		case 4<<3 | 2:
			if m.Memo, err = buf.DecodeStringBytes(); err != nil {
				return errors.Wrap(err, "memo")
			}
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}

// UpdateConfigurationMsg overwrites the non zero fields of the stored
// configuration with the patch.
type UpdateConfigurationMsg struct {
	Patch *Configuration `json:"patch"`
}

var _ proto.Message = (*UpdateConfigurationMsg)(nil)

func (m *UpdateConfigurationMsg) Reset()         { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateConfigurationMsg) ProtoMessage()    {}

// Marshal implements ember.Persistent.
func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if m.Patch != nil {
		raw, err := m.Patch.Marshal()
		if err != nil {
			return nil, err
		}
		_ = buf.EncodeVarint(1<<3 | 2)
		_ = buf.EncodeRawBytes(raw)
	}
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	*m = UpdateConfigurationMsg{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "update tag")
		}
		switch tag {
		case 1<<3 | 2:
			bz, err := buf.DecodeRawBytes(true)
			if err != nil {
				return errors.Wrap(err, "patch")
			}
			m.Patch = &Configuration{}
			if err := m.Patch.Unmarshal(bz); err != nil {
				return errors.Wrap(err, "patch")
			}
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}

// EngineState carries the mutable per call flags of the interceptor.
type EngineState struct {
	Alternate     bool          `json:"alternate"`
	PendingHolder ember.Address `json:"pending_holder"`
}

var _ proto.Message = (*EngineState)(nil)

func (s *EngineState) Reset()         { *s = EngineState{} }
func (s *EngineState) String() string { return proto.CompactTextString(s) }
func (*EngineState) ProtoMessage()    {}

// Marshal implements ember.Persistent.
func (s *EngineState) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if s.Alternate {
		_ = buf.EncodeVarint(1<<3 | 0)
		_ = buf.EncodeVarint(1)
	}
	writeBytes(buf, 2, s.PendingHolder)
	return buf.Bytes(), nil
}

// Unmarshal implements ember.Persistent.
func (s *EngineState) Unmarshal(raw []byte) error {
	*s = EngineState{}
	buf := proto.NewBuffer(raw)
	for {
		tag, err := buf.DecodeVarint()
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "state tag")
		}
		switch tag {
		case 1<<3 | 0:
			val, err := buf.DecodeVarint()
			if err != nil {
				return errors.Wrap(err, "alternate")
			}
			s.Alternate = val != 0
		case 2<<3 | 2:
			if s.PendingHolder, err = readBytes(buf); err != nil {
				return errors.Wrap(err, "pending holder")
			}
		default:
			return errors.Wrapf(errors.ErrInput, "unknown field tag %d", tag)
		}
	}
}

func readBytes(buf *proto.Buffer) (ember.Address, error) {
	bz, err := buf.DecodeRawBytes(true)
	if err != nil {
		return nil, err
	}
	return bz, nil
}

func writeBytes(buf *proto.Buffer, field uint64, bz []byte) {
	if len(bz) == 0 {
		return
	}
	_ = buf.EncodeVarint(field<<3 | 2)
	_ = buf.EncodeRawBytes(bz)
}

func writeVarint(buf *proto.Buffer, field uint64, val int64) {
	if val == 0 {
		return
	}
	_ = buf.EncodeVarint(field<<3 | 0)
	_ = buf.EncodeVarint(uint64(val))
}
