package xdict_test

import (
	"fmt"

	"github.com/omeyang/xvalue/pkg/util/xdict"
)

func ExampleNew() {
	d, err := xdict.New()
	if err != nil {
		panic(err)
	}
	defer d.Close()

	a, _ := d.InsertString("eth0")
	b, _ := d.Insert([]byte("eth0"))

	fmt.Println(a == b)
	fmt.Println(d.Refs("eth0"))

	d.Remove(a)
	d.Remove(b)
	fmt.Println(d.Len())
	// Output:
	// true
	// 2
	// 0
}

func ExampleDict_InsertOwned() {
	d, err := xdict.New()
	if err != nil {
		panic(err)
	}
	defer d.Close()

	released := 0
	buf := []byte("192.0.2.1%eth0")
	r, err := d.InsertOwned(xdict.OwnFunc(buf, func([]byte) { released++ }))
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	fmt.Println(released)

	d.Remove(r)
	fmt.Println(released)
	// Output:
	// 192.0.2.1%eth0
	// 0
	// 1
}
