package middleware

import (
	"strings"
	"testing"
)

func TestWalletVerifier(t *testing.T) {
	v := NewWalletVerifier()

	cases := []struct {
		name   string
		wallet string
		want   bool
	}{
		{"exact match", AdminWallet, true},
		{"uppercase match", strings.ToUpper(AdminWallet), true},
		{"lowercase match", strings.ToLower(AdminWallet), true},
		{"empty", "", false},
		{"other wallet", "0x0000000000000000000000000000000000000000", false},
		{"prefix only", AdminWallet[:10], false},
	}
	for _, tc := range cases {
		if got := v.IsAdmin(tc.wallet); got != tc.want {
			t.Fatalf("%s: IsAdmin(%q) = %v, want %v", tc.name, tc.wallet, got, tc.want)
		}
	}
}
