package codec

import "github.com/cxxxr/chainsort/lib/chain"

type encoder struct {
	buf []byte
}

func newEncoder() *encoder {
	return &encoder{}
}

// EncodeUint writes v as big-endian groups of 7 bits. Every byte except the
// last one has the high bit set.
func (enc *encoder) EncodeUint(v uint64) {
	vs := make([]byte, 0, 10)
	vs = append(vs, byte(v&0x7f))
	for {
		v >>= 7
		if v == 0 {
			break
		}
		vs = append(vs, byte((v&0x7f)+0x80))
	}
	enc.buf = append(enc.buf, reverse(vs)...)
}

func (enc *encoder) EncodeInt(v int) {
	enc.EncodeUint(zigzag(int64(v)))
}

func (enc *encoder) EncodeChain(head *chain.Node[int]) {
	enc.EncodeUint(uint64(chain.Len(head)))
	for n := head; n != nil; n = n.Next() {
		enc.EncodeInt(n.Value())
	}
}

func (enc *encoder) Bytes() []byte {
	return enc.buf
}

// Encode serializes a chain of ints into the blob format stored in the database.
func Encode(head *chain.Node[int]) []byte {
	enc := newEncoder()
	enc.EncodeChain(head)
	return enc.Bytes()
}

func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func reverse[T any](vs []T) []T {
	size := len(vs)
	for i := 0; i < size/2; i++ {
		vs[i], vs[size-i-1] = vs[size-i-1], vs[i]
	}
	return vs
}
