package services

import "testing"

func TestNormalizeSKU(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234", "1234"},
		{" 1234 ", "1234"},
		{"01234", "01234"},
		{"1234.0", "1234"},
		{"AB-1234", "1234"},
		{"", ""},
		{"   ", ""},
		{"abc", ""},
	}
	for _, c := range cases {
		if got := NormalizeSKU(c.in); got != c.want {
			t.Errorf("NormalizeSKU(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeSKUIdempotent(t *testing.T) {
	for _, in := range []string{"01234", "1234", "9", ""} {
		once := NormalizeSKU(in)
		if twice := NormalizeSKU(once); twice != once {
			t.Errorf("NormalizeSKU not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeSKUFloat(t *testing.T) {
	if got := NormalizeSKUFloat(1234.0); got != "1234" {
		t.Errorf("NormalizeSKUFloat(1234.0) = %q, want %q", got, "1234")
	}
	if got := NormalizeSKUFloat(1234.5); got != "12345" {
		t.Errorf("NormalizeSKUFloat(1234.5) = %q, want %q", got, "12345")
	}
}

func TestNormalizeBrandAliases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"BOT", "oBoticário"},
		{"o boticario", "oBoticário"},
		{"EUD", "Eudora"},
		{"qdb", "Quem Disse Berenice"},
		{"OUI", "O.U.I"},
		{"au migos", "AuAmigos"},
		{"Natura", "Natura"},
		{"  Eudora  ", "Eudora"},
		{"", MarcaDesconhecida},
	}
	for _, c := range cases {
		if got := NormalizeBrand(c.in); got != c.want {
			t.Errorf("NormalizeBrand(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
