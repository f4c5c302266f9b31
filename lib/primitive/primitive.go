package primitive

import "github.com/google/uuid"

type ChainId string

const EmptyChainId = ChainId("")

func NewChainId() ChainId {
	return ChainId(uuid.NewString())
}
