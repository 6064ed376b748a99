// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tune searches the LZSS search and lookahead sizes that provide
// the fastest compression for a set of compression ratio slots.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"sort"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/ulikunitz/qsf/internal/tuning"
	"github.com/ulikunitz/qsf/lzss"
)

// config is a candidate parameter set.
type config struct {
	SearchSize    int
	LookaheadSize int
	disabled      bool
}

type preset struct {
	present bool
	cfg     config
	result  testing.BenchmarkResult
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

// Returns the slot index the ratio qualifies for. If no slot can be found ok
// will be false.
func slot(slots []float64, ratio float64) (i int, ok bool) {
	for i, r := range slots {
		if ratio > r {
			return i - 1, i > 0
		}
	}
	return len(slots) - 1, true
}

// worse reports whether a cannot compress better than b. Smaller windows
// find a subset of the matches of larger windows.
func worse(a, b *config) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	return a.SearchSize <= b.SearchSize &&
		a.LookaheadSize <= b.LookaheadSize
}

func findPresets(slots []float64, configs []config) {
	if len(slots) == 0 {
		log.Fatalf("no slots defined")
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i] > slots[j]
	})
	fmt.Printf("slots %.3f\n", slots)
	rand.Shuffle(len(configs), func(i, j int) {
		configs[i], configs[j] = configs[j], configs[i]
	})

	presets := make([]preset, len(slots))

	i := 0
	n := len(configs)
	for len(configs) > 0 {
		k := len(configs) - 1
		cfg := configs[k]
		configs = configs[:k]
		if cfg.disabled {
			continue
		}
		n--

		i++
		result := testing.Benchmark(encoderBenchmark(cfg))
		fmt.Printf("%d-%d %s\n", i, n, result)
		si, ok := slot(slots, ratio(result))
		if !ok {
			for i := range configs {
				p := &configs[i]
				if p.disabled {
					continue
				}
				if worse(p, &cfg) {
					p.disabled = true
					n--
				}
			}
			continue
		}
		v := mbPerSec(result)
		p := presets[si]
		if p.present && v <= mbPerSec(p.result) {
			fmt.Printf("slot %d - not faster\n", si+1)
			continue
		}
		presets[si] = preset{
			present: true,
			cfg:     cfg,
			result:  result,
		}
		fmt.Printf("slot %d - update\n", si+1)
		pretty.Println(cfg)
	}

	fmt.Printf("\n\n### Result ###\n\n")

	for si, p := range presets {
		if si > 0 {
			fmt.Printf("\n")
		}
		if !p.present {
			fmt.Printf("slot %d - not present\n", si)
			continue
		}
		fmt.Printf("slot %d - \t%.3f c/u\t%.2f MB/s\n",
			si+1, ratio(p.result), mbPerSec(p.result))
		pretty.Println(p.cfg)
	}
}

// appendConfigs adds the search sizes 2^k-1 combined with lookahead sizes
// 2^j.
func appendConfigs(x []config, maxSearchExp, maxLookaheadExp int) []config {
	y := x
	for searchExp := 1; searchExp <= maxSearchExp; searchExp++ {
		for lookExp := 1; lookExp <= maxLookaheadExp; lookExp++ {
			y = append(y, config{
				SearchSize:    1<<searchExp - 1,
				LookaheadSize: 1 << lookExp,
			})
		}
	}
	return y
}

func baseline() {
	files := defaultWorkload().files
	size := tuning.Size(files)
	n, err := tuning.ZstdCompress(files, zstd.SpeedDefault)
	if err != nil {
		log.Fatalf("zstd baseline error %s", err)
	}
	fmt.Printf("zstd baseline for %d corpus bytes: %.3f c/u\n", size,
		tuning.Ratio(n, size))
}

func main() {
	testing.Init()
	log.SetPrefix("tune: ")
	log.SetFlags(0)

	var (
		searchExp    = pflag.Int("search-exp", 12, "maximum exponent of the search size")
		lookaheadExp = pflag.Int("lookahead-exp", 7, "maximum exponent of the lookahead size")
		sample       = pflag.IntP("sample", "s", sampleSize, "bytes sampled from each corpus file")
	)
	pflag.Parse()
	if pflag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "usage: tune [--search-exp N] [--lookahead-exp N] [--sample N]\n")
		os.Exit(2)
	}
	if !(1 <= *searchExp && 1<<*searchExp-1 <= lzss.MaxBufferSize) {
		log.Fatalf("search exponent %d out of range", *searchExp)
	}
	if !(1 <= *lookaheadExp && 1<<*lookaheadExp <= lzss.MaxBufferSize) {
		log.Fatalf("lookahead exponent %d out of range", *lookaheadExp)
	}
	sampleSize = *sample

	baseline()
	configs := appendConfigs(nil, *searchExp, *lookaheadExp)
	slots := []float64{0.70, 0.65, 0.60, 0.55, 0.50, 0.45, 0.40}
	findPresets(slots, configs)
}
