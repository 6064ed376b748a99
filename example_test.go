// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/ulikunitz/qsf"
)

func Example() {
	air := qsf.NewBlock("minecraft:air")
	torch := qsf.NewBlock("minecraft:wall_torch",
		qsf.Property{Key: "facing", Value: "north"})
	s := qsf.Slice{air, air, torch, air, air, torch, air, air}

	data, err := qsf.Encode(s)
	if err != nil {
		log.Fatalf("Encode error %s", err)
	}
	info, err := qsf.ReadInfo(bytes.NewReader(data))
	if err != nil {
		log.Fatalf("ReadInfo error %s", err)
	}
	fmt.Printf("palette %v, %d-bit indexes, %d cells\n",
		info.Palette, info.IndexBits, info.CellCount)

	blocks, err := qsf.Decode(data)
	if err != nil {
		log.Fatalf("Decode error %s", err)
	}
	fmt.Println(blocks[2])
	fmt.Println(qsf.ContentEquals(s, blocks))
	// Output:
	// palette [minecraft:air minecraft:wall_torch[facing=north]], 2-bit indexes, 8 cells
	// minecraft:wall_torch[facing=north]
	// true
}
