package codec

import (
	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/pkg/errors"
)

var ErrTruncated = errors.New("codec: truncated chain blob")

type decoder struct {
	buf []byte
	pos int
}

func newDecoder(blob []byte) *decoder {
	d := new(decoder)
	d.buf = blob
	d.pos = 0
	return d
}

func (dec *decoder) decodeUint() (uint64, error) {
	var v uint64
	for {
		if dec.pos >= len(dec.buf) {
			return 0, errors.Wrapf(ErrTruncated, "offset %d", dec.pos)
		}
		b := uint64(dec.buf[dec.pos])
		dec.pos++
		v <<= 7
		if (b >> 7) == 1 {
			v |= (b ^ 0x80)
		} else {
			v |= b
			break
		}
	}
	return v, nil
}

func (dec *decoder) decodeInt() (int, error) {
	u, err := dec.decodeUint()
	if err != nil {
		return 0, err
	}
	return int(unzigzag(u)), nil
}

func (dec *decoder) DecodeChain() (*chain.Node[int], error) {
	count, err := dec.decodeUint()
	if err != nil {
		return nil, err
	}

	var head, tail *chain.Node[int]
	for i := uint64(0); i < count; i++ {
		v, err := dec.decodeInt()
		if err != nil {
			return nil, err
		}
		node := chain.New(v)
		if tail == nil {
			head = node
		} else {
			tail.SetNext(node)
		}
		tail = node
	}
	return head, nil
}

func Decode(blob []byte) (*chain.Node[int], error) {
	return newDecoder(blob).DecodeChain()
}
