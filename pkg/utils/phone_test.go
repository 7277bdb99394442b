package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	got := NormalizePhone("+1-987-654-3210")
	if got != "19876543210" {
		t.Fatalf("normalize: got %q want %q", got, "19876543210")
	}
}

func TestValidPhoneTooShort(t *testing.T) {
	if ValidPhone("12345") {
		t.Fatalf("5-digit phone should be rejected")
	}
}

func TestValidPhoneTenDigits(t *testing.T) {
	if !ValidPhone("9876543210") {
		t.Fatalf("10-digit phone should be accepted")
	}
}

func TestValidPhoneWithSeparators(t *testing.T) {
	if !ValidPhone("+1-987-654-3210") {
		t.Fatalf("formatted phone should be accepted after stripping separators")
	}
}

func TestValidPhoneTooLong(t *testing.T) {
	if ValidPhone("1234567890123456") {
		t.Fatalf("16-digit phone should be rejected")
	}
}
