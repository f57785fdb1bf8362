package intake

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 Bytes"},
		{"negative", -5, "0 Bytes"},
		{"one_byte", 1, "1 Bytes"},
		{"below_kb", 1023, "1023 Bytes"},
		{"one_kb", 1024, "1 KB"},
		{"one_and_half_kb", 1536, "1.5 KB"},
		{"rounded_two_decimals", 1234, "1.21 KB"},
		{"one_mb", 1 << 20, "1 MB"},
		{"ten_mb", 10 << 20, "10 MB"},
		{"one_gb", 1 << 30, "1 GB"},
		{"beyond_table_clamps_to_gb", 1 << 40, "1024 GB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatSize(tc.bytes); got != tc.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tc.bytes, got, tc.want)
			}
		})
	}
}
