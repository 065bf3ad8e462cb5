package rle_test

import (
	"fmt"

	"github.com/ChevyRay/rle"
)

func ExampleTable_Encode() {
	table := rle.FromSlice([]rune("ABC"))

	enc, err := table.Encode([]rune("AAAAABBBBBBBBBBCCCAAAAAAAAAA"))
	if err != nil {
		fmt.Println(err)
		return
	}

	for run := range enc.All() {
		item, _ := table.Get(run.Index)
		fmt.Printf("%d%c ", run.Length, item)
	}
	fmt.Println()
	// Output: 5A 10B 3C 10A
}

func ExampleTable_AppendBytesMut() {
	table := rle.New[rune]()

	data, err := table.AppendBytesMut(nil, []rune("AAAAABBBBBBBBBBCCCAAAAAAAAAA"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("% X\n", data)

	decoded, err := table.AppendDecoded(nil, data)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(decoded))
	// Output:
	// 01 05 03 0A 05 03 01 0A
	// AAAAABBBBBBBBBBCCCAAAAAAAAAA
}

func ExampleTable_Sorted() {
	table := rle.New[rune]()
	table.ExtendFromSlice([]rune("EEEEAAACCCCCCCBBBBBBDD"))

	for idx, item := range table.SortedAll() {
		fmt.Printf("%c=%d ", item, idx)
	}
	fmt.Println()
	// Output: A=1 B=3 C=2 D=4 E=0
}

func ExampleTable_EncodeHexString() {
	table := rle.FromSlice([]rune("ABC"))

	s, err := table.EncodeHexString([]rune("AAAAABBBBBBBBBBCCCAAAAAAAAAA"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	// Output: 0:5,1:A,2:3,0:A,
}
