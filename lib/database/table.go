package database

import (
	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/cxxxr/chainsort/lib/codec"
	"github.com/cxxxr/chainsort/lib/primitive"
)

type Chain struct {
	Id     primitive.ChainId `db:"id"`
	Name   string            `db:"name"`
	Source string            `db:"source"`
	Length int               `db:"length"`
	Sorted bool              `db:"sorted"`
	Body   []byte            `db:"body"`
}

func NewChain(name, source string, head *chain.Node[int]) *Chain {
	return &Chain{
		Id:     primitive.NewChainId(),
		Name:   name,
		Source: source,
		Length: chain.Len(head),
		Body:   codec.Encode(head),
	}
}

// Nodes decodes the stored body into a fresh chain.
func (c *Chain) Nodes() (*chain.Node[int], error) {
	return codec.Decode(c.Body)
}
