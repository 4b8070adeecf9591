// Package chaincfg defines chain configuration parameters.
//
// Creativecoin has three standard networks: the main network, intended for
// the transfer of monetary value; the public test network (testnet); and
// the regression test network (regtest), used exclusively for unit and RPC
// server tests. These networks are incompatible with each other (each
// sharing a different genesis block) and software should handle errors
// where input intended for one network is used on an application instance
// running on a different network.
//
// For main packages, a (typically global) var may be assigned the address
// of one of the standard Params returned by the network constructors for
// use as the application's "active" network. When a network parameter is
// needed, it may then be looked up through this variable (either directly,
// or hidden in a library call).
//
//	package main
//
//	import (
//	        "flag"
//	        "fmt"
//	        "log"
//
//	        "github.com/creativecoin/crvd/chaincfg"
//	)
//
//	var testnet = flag.Bool("testnet", false, "operate on the test Creativecoin network")
//
//	// By default (without -testnet), use mainnet.
//	var chainParams = chaincfg.MainNetParams()
//
//	func main() {
//	        flag.Parse()
//
//	        // Modify active network parameters if operating on testnet.
//	        if *testnet {
//	                chainParams = chaincfg.TestNetParams()
//	        }
//
//	        fmt.Println(chainParams.Name)
//	}
package chaincfg
