package nadiaapi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nadia-api/nadia-cli/internal/httpclientx"
)

func TestDecodeResult(t *testing.T) {
	t.Run("success with data", func(t *testing.T) {
		raw := `{"success":true,"message":"ok","data":[{"package_code":"X","package_name":"Y","package_price":1500}]}`
		result, err := DecodeResult[[]Package]([]byte(raw))
		if err != nil {
			t.Fatal(err)
		}
		if !result.OK() || result.Message() != "ok" {
			t.Fatal("unexpected result", result)
		}
		expect := []Package{{Code: "X", Name: "Y", Price: 1500}}
		if diff := cmp.Diff(expect, result.Data()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("failure carrying data", func(t *testing.T) {
		raw := `{"success":false,"message":"nope","data":[{"package_code":"X"}]}`
		result, err := DecodeResult[[]Package]([]byte(raw))
		if err != nil {
			t.Fatal(err)
		}
		if result.OK() {
			t.Fatal("expected failure")
		}
		if result.Message() != "nope" {
			t.Fatal("unexpected message", result.Message())
		}
		if result.Data() != nil {
			t.Fatal("failure must not expose data")
		}
	})

	t.Run("missing keys decode to defaults", func(t *testing.T) {
		result, err := DecodeResult[OTPData]([]byte(`{"success":true}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Data().Expiry() != DefaultOTPExpiry {
			t.Fatal("unexpected expiry", result.Data().Expiry())
		}
	})

	t.Run("missing success means failure", func(t *testing.T) {
		result, err := DecodeResult[OTPData]([]byte(`{"data":{"expires_in":60}}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.OK() {
			t.Fatal("expected failure")
		}
	})

	t.Run("null data", func(t *testing.T) {
		result, err := DecodeResult[*Balance]([]byte(`{"success":true,"data":null}`))
		if err != nil {
			t.Fatal(err)
		}
		if !result.OK() || result.Data() != nil {
			t.Fatal("unexpected result", result)
		}
	})

	t.Run("data with the wrong shape", func(t *testing.T) {
		_, err := DecodeResult[[]Package]([]byte(`{"success":true,"data":{"a":1}}`))
		var parseerr *httpclientx.ErrParseFailed
		if !errors.As(err, &parseerr) {
			t.Fatal("not an *ErrParseFailed", err)
		}
	})

	t.Run("not an envelope", func(t *testing.T) {
		_, err := DecodeResult[[]Package]([]byte(`[]`))
		var parseerr *httpclientx.ErrParseFailed
		if !errors.As(err, &parseerr) {
			t.Fatal("not an *ErrParseFailed", err)
		}
	})
}
