package main

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/cprime/bytetrie/common"
	"github.com/cprime/bytetrie/trie"
)

var profileCommand = cli.Command{
	Name:   "profile",
	Usage:  "report the prof_lookup depth histogram over a random key set",
	Flags:  []cli.Flag{&countFlag},
	Action: withDiagnostics(runProfile),
}

func runProfile(ctx *cli.Context) error {
	n := ctx.Int(countFlag.Names()[0])

	tr, err := trie.New[common.Key8, struct{}](common.Key8Serializer)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(2))
	keys := make([]common.Key8, n)
	for i := range keys {
		rng.Read(keys[i][:])
		tr.Insert(keys[i])
	}

	histogram := map[uint64]int{}
	for _, k := range keys {
		histogram[tr.ProfLookup(k)]++
	}

	depths := make([]uint64, 0, len(histogram))
	for d := range histogram {
		depths = append(depths, d)
	}
	sort.Slice(depths, func(i, j int) bool { return depths[i] < depths[j] })

	for _, d := range depths {
		fmt.Printf("depth %2d: %d keys\n", d, histogram[d])
	}
	return nil
}
