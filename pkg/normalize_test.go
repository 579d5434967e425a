package pkg

import (
	"testing"
	"time"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"São Paulo", "sao paulo"},
		{"  Jardim   Botânico ", "jardim botanico"},
		{"AVENIDA", "avenida"},
		{"Conceição", "conceicao"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Fold(tc.in); got != tc.want {
			t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldKey(t *testing.T) {
	got := FoldKey("Rua das Árvores", "São Gonçalo", "RJ")
	want := "rua das arvores#sao goncalo#rj"
	if got != want {
		t.Fatalf("FoldKey = %q, want %q", got, want)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 5, 7, 15, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "07-05-2024" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("(21) 99876-5432"); got != "21998765432" {
		t.Fatalf("DigitsOnly = %q", got)
	}
}
