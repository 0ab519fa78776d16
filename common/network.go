package common

import "math/big"

// Network is an EVM network the indexer can follow.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkSepolia Network = "sepolia"
	NetworkLocal   Network = "local"
)

var chainIDs = map[Network]int64{
	NetworkMainnet: 1,
	NetworkSepolia: 11155111,
	NetworkLocal:   31337,
}

func (n Network) IsSupported() bool {
	_, ok := chainIDs[n]
	return ok
}

// ChainID returns the EIP-155 chain id of the network, or nil if the network is unknown.
func (n Network) ChainID() *big.Int {
	id, ok := chainIDs[n]
	if !ok {
		return nil
	}
	return big.NewInt(id)
}

func (n Network) String() string {
	return string(n)
}
