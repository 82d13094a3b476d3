package utils

import "testing"

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{
		"+233241234567",
		"0241234567",
		"024 123 4567",
		"+233-24-123-4567",
	}
	for _, number := range valid {
		if err := ValidatePhoneNumber(number); err != nil {
			t.Errorf("expected %q to be valid, got %v", number, err)
		}
	}

	invalid := []string{
		"",
		"+23324123456",    // too short
		"+2332412345678",  // too long
		"024123456",       // too short
		"02412345678",     // too long
		"+1241234567",     // wrong country code
		"241234567",       // missing leading zero
		"+233abc1234567",  // non-digits
	}
	for _, number := range invalid {
		if err := ValidatePhoneNumber(number); err == nil {
			t.Errorf("expected %q to be rejected", number)
		}
	}
}
