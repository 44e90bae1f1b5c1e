// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"errors"
	"fmt"

	"cloudeng.io/caldate"
)

func ExampleParse() {
	d, err := caldate.Parse("21.05.2020")
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.DayOfYear())
	_, err = caldate.Parse("29.02.2019")
	var ve *caldate.ValidationError
	if errors.As(err, &ve) {
		fmt.Println(ve.Kind, ve)
	}
	// Output:
	// Date: 2020.5.21 142
	// day-out-of-range invalid day value: "29"
}

func ExampleAddDays() {
	d := caldate.MustParse("10.01.2020")
	later, err := caldate.AddDays(d, 1000000)
	if err != nil {
		panic(err)
	}
	fmt.Println(later.Format())
	if err := d.Advance(50); err != nil {
		panic(err)
	}
	fmt.Println(d.Format())
	// Output:
	// 07.12.4757
	// 29.02.2020
}
