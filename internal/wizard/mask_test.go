package wizard

import "testing"

func TestFormatWhatsAppIncremental(t *testing.T) {
	// the mask must stay readable while the user is still typing
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"1199999", "(11) 99999"},
		{"11999998", "(11) 99999-8"},
		{"11999998888", "(11) 99999-8888"},
	}
	for _, tt := range tests {
		if got := FormatWhatsApp(tt.in); got != tt.want {
			t.Fatalf("FormatWhatsApp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatWhatsAppKeystrokes(t *testing.T) {
	// feeding digits one keystroke at a time through the mask, the stored
	// value must end up fully formatted
	cur := ""
	for _, digit := range "11999998888" {
		cur = FormatWhatsApp(cur + string(digit))
	}
	if cur != "(11) 99999-8888" {
		t.Fatalf("expected (11) 99999-8888, got %q", cur)
	}
}

func TestFormatWhatsAppStripsAndCaps(t *testing.T) {
	if got := FormatWhatsApp("11999998888999"); got != "(11) 99999-8888" {
		t.Fatalf("expected trailing digits dropped, got %q", got)
	}
	if got := FormatWhatsApp("abc"); got != "" {
		t.Fatalf("expected empty for no digits, got %q", got)
	}
}

func TestFormatPostalCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"0", "0"},
		{"01310", "01310"},
		{"013101", "01310-1"},
		{"01310100", "01310-100"},
		{"01310-100", "01310-100"},
		{"013101009", "01310-100"},
	}
	for _, tt := range tests {
		if got := FormatPostalCode(tt.in); got != tt.want {
			t.Fatalf("FormatPostalCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
