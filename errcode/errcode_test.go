package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":             OK,
		"timeout":        Timeout,
		"nack":           Nack,
		"invalid_params": InvalidParams,
		"error":          Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	for _, c := range []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{Timeout, Timeout},
		{&E{C: Nack, Op: "i2c.write"}, Nack},
		{errors.New("boom"), Error},
	} {
		if got := Of(c.err); got != c.want {
			t.Fatalf("Of(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestWrapKeepsCode(t *testing.T) {
	if Wrap("op", nil) != nil {
		t.Fatalf("Wrap(nil) must stay nil")
	}
	err := Wrap("i2c.tx", Nack)
	if !errors.Is(err, Nack) {
		t.Fatalf("errors.Is(%v, Nack) = false", err)
	}
	if errors.Is(err, Timeout) {
		t.Fatalf("errors.Is(%v, Timeout) = true", err)
	}
	if got, want := err.Error(), "i2c.tx: nack"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if Of(err) != Nack {
		t.Fatalf("Of(wrapped) = %q", Of(err))
	}
}
