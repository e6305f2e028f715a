// Copyright 2020 Aleksandr Demakin. All rights reserved.

package float128

import (
	"encoding/json"
	"fmt"
)

func ExampleFloat128() {
	v1, err := Parse("1.5")
	if err != nil {
		panic(err)
	}
	v2 := FromFloat64(2.25)
	fmt.Printf("%s + %s = %s\n", v1, v2, v1.Add(v2, RoundNearestEven))
	fmt.Printf("%s * %s = %s\n", v1, v2, v1.Mul(v2, RoundNearestEven))
	fmt.Printf("class of %s is %s, less than %s: %v\n", v1, v1.Classify(), v2, v1.Lt(v2))

	data, err := json.Marshal(v1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value: %s\n", string(data))

	v3 := FromInt64(-7)
	fmt.Printf("%s as an int64 = %d, as a float64 = %v", v3, v3.Int64(), v3.Float64(RoundNearestEven))

	// Output:
	// 1.5 + 2.25 = 3.75
	// 1.5 * 2.25 = 3.375
	// class of 1.5 is Normal, less than 2.25: true
	// json for value: "1.5"
	// -7 as an int64 = -7, as a float64 = -7
}

func ExampleFloat128_Mul_roundToOdd() {
	// 1 + 2^-112 squared is inexact at 113 bits of precision; round-to-odd
	// keeps the result distinguishable from the nearest-even result.
	v := FromBits(0x3fff_0000_0000_0000, 1)
	hi, lo := v.Mul(v, RoundNearestEven).Bits()
	fmt.Printf("nearest-even: %016x_%016x\n", hi, lo)
	hi, lo = v.Mul(v, RoundToOdd).Bits()
	fmt.Printf("round-to-odd: %016x_%016x", hi, lo)

	// Output:
	// nearest-even: 3fff000000000000_0000000000000002
	// round-to-odd: 3fff000000000000_0000000000000003
}
