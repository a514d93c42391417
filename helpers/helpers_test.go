package helpers

import "testing"

func TestShortenAddr(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"evm address", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "0xd8dA…6045"},
		{"tron address", "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8", "TJRabP…RTv8"},
		{"short string untouched", "0xabc", "0xabc"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShortenAddr(tc.in); got != tc.want {
				t.Errorf("ShortenAddr(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDisplayAddress(t *testing.T) {
	t.Run("checksums hex addresses", func(t *testing.T) {
		// EIP-55 test vector
		got := DisplayAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
		if got != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" {
			t.Errorf("unexpected checksum form: %s", got)
		}
	})

	t.Run("leaves non-hex input as typed", func(t *testing.T) {
		for _, in := range []string{"TJRabPrwbZy45sbavfcjinPJC18kjpRTv8", "not-an-address", ""} {
			if got := DisplayAddress(in); got != in {
				t.Errorf("DisplayAddress(%q) = %q, want input unchanged", in, got)
			}
		}
	})
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10.500", "10.5"},
		{" 7 ", "7"},
		{"0.000001", "0.000001"},
		{"-5", "-5"},
		// Unparseable input is shown as typed, never rejected
		{"ten", "ten"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max broken")
	}
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min broken")
	}
}
