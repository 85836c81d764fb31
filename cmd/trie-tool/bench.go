package main

import (
	"fmt"
	"math/rand"

	"github.com/urfave/cli/v2"

	"github.com/cprime/bytetrie/common"
	"github.com/cprime/bytetrie/trie"
)

var countFlag = cli.IntFlag{
	Name:  "count",
	Usage: "number of random keys to insert",
	Value: 100_000,
}

var benchCommand = cli.Command{
	Name:   "bench",
	Usage:  "insert random 8-byte keys and report size/node_count/allocated_bytes/used_bytes",
	Flags:  []cli.Flag{&countFlag},
	Action: withDiagnostics(runBench),
}

func runBench(ctx *cli.Context) error {
	n := ctx.Int(countFlag.Names()[0])

	tr, err := trie.New[common.Key8, uint64](common.Key8Serializer)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		var k common.Key8
		rng.Read(k[:])
		*tr.Insert(k) = uint64(i)
	}

	fmt.Printf("size:            %d\n", tr.Size())
	fmt.Printf("node_count:      %d\n", tr.NodeCount())
	fmt.Printf("allocated_bytes: %d\n", tr.AllocatedBytes())
	fmt.Printf("used_bytes:      %d\n", tr.UsedBytes())
	fmt.Print(tr.MemoryFootprint().Report())
	return nil
}
