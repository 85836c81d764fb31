package main

import (
	"fmt"
	"math/rand"

	"github.com/urfave/cli/v2"

	"github.com/cprime/bytetrie/common"
	"github.com/cprime/bytetrie/trie"
)

var roundsFlag = cli.IntFlag{
	Name:  "rounds",
	Usage: "number of insert/remove churn rounds",
	Value: 1_000,
}

var stressCommand = cli.Command{
	Name:   "stress",
	Usage:  "churn insert/remove cycles, verifying size against a reference map after every round",
	Flags:  []cli.Flag{&roundsFlag, &countFlag},
	Action: withDiagnostics(runStress),
}

func runStress(ctx *cli.Context) error {
	rounds := ctx.Int(roundsFlag.Names()[0])
	liveTarget := ctx.Int(countFlag.Names()[0])

	tr, err := trie.New[common.Key8, int](common.Key8Serializer)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(3))
	live := map[common.Key8]int{}

	for round := 0; round < rounds; round++ {
		for len(live) < liveTarget {
			var k common.Key8
			rng.Read(k[:])
			if _, exists := live[k]; exists {
				continue
			}
			v := rng.Int()
			*tr.Insert(k) = v
			live[k] = v
		}

		removals := liveTarget / 10
		for k := range live {
			if removals == 0 {
				break
			}
			tr.Remove(k)
			delete(live, k)
			removals--
		}

		if tr.Size() != uint64(len(live)) {
			return fmt.Errorf("round %d: size invariant violated: trie reports %d, reference map has %d", round, tr.Size(), len(live))
		}
		for k, want := range live {
			got, ok := tr.Get(k)
			if !ok || got != want {
				return fmt.Errorf("round %d: key %x: got (%v, %v), want (%v, true)", round, k, got, ok, want)
			}
		}
	}

	fmt.Printf("ok: %d rounds, final size %d, node_count %d\n", rounds, tr.Size(), tr.NodeCount())
	return nil
}
