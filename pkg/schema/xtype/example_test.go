package xtype_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/xvalue/pkg/schema/xtype"
)

func ExampleLoadTypes() {
	doc := []byte(`
types:
  short-address:
    length: "1..9"
    patterns:
      - regexp: '[0-9.]+'
`)
	types, err := xtype.LoadTypes(doc, xtype.DocYAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	typ := types["short-address"]

	fmt.Println(typ.Validate([]byte("192.0.2.1"), xtype.HintString))
	err = typ.Validate([]byte("198.51.100.7"), xtype.HintString)
	fmt.Println(errors.Is(err, xtype.ErrLengthViolation))
	// Output:
	// <nil>
	// true
}
