package der

import "testing"

func TestIsNumber(t *testing.T) {
	cases := map[string]bool{
		"":    false,
		"-":   false,
		"A":   false,
		"3":   true,
		"33":  true,
		"033": true,
	}
	for in, want := range cases {
		if got := isNumber(in); got != want {
			t.Fatalf("isNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidClass(t *testing.T) {
	if !validClass(ClassUniversal) || !validClass(ClassPrivate) {
		t.Fatalf("universal and private classes must be valid")
	}
	if validClass(ClassPrivate + 1) {
		t.Fatalf("a class past private must be invalid")
	}
}

func TestBool2Str(t *testing.T) {
	if bool2str(true) != "true" || bool2str(false) != "false" {
		t.Fatalf("bool2str mismatch")
	}
}
