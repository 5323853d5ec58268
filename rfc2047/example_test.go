package rfc2047_test

import (
	"fmt"

	"github.com/zostay/go-rfc2047/rfc2047"
)

func ExampleEncoder_EncodeString() {
	enc := rfc2047.NewEncoder()

	out, status := enc.EncodeString("Re: Café", 0, false)
	fmt.Println(out)
	fmt.Println(status)

	// Output:
	// Re: =?iso-8859-1?Q?Caf=E9?=
	// ok
}

func ExampleEncoder_EncodeString_displayName() {
	enc := rfc2047.NewEncoder()

	out, _ := enc.EncodeString("Doe, John", 0, true)
	fmt.Println(out)

	// Output: =?us-ascii?Q?Doe=2C?= John
}

func ExampleDecoder_Decode() {
	dec := rfc2047.NewDecoder()

	fmt.Println(dec.Decode("=?utf-8?B?SGVsbG8=?= =?iso-8859-1?Q?_Caf=E9?="))

	// Output: Hello Café
}
