package display

import "testing"

func TestKindForColumn(t *testing.T) {
	tests := []struct {
		column string
		want   ColumnKind
	}{
		{"PO Date", KindDate},
		{"Recv Date", KindDate},
		{"Unit Cost", KindCurrency},
		{"Qty", KindQty},
		{"OOR Serial", KindOORSerial},
		{"Dev Code", KindText},
		{"Notes 1", KindText},
		{"", KindText},
	}
	for _, tt := range tests {
		if got := KindForColumn(tt.column); got != tt.want {
			t.Errorf("KindForColumn(%q) = %v, want %v", tt.column, got, tt.want)
		}
	}
}

func TestColumnKind_String(t *testing.T) {
	tests := []struct {
		kind ColumnKind
		want string
	}{
		{KindText, "text"},
		{KindDate, "date"},
		{KindCurrency, "currency"},
		{KindQty, "qty"},
		{KindOORSerial, "oor_serial"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ColumnKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFormatCell_Date(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2024-03-15", "03/15/2024"},
		{"2024-03-15 10:30:00", "03/15/2024"},
		{"03/15/2024", "03/15/2024"},
		{"3/5/2024", "03/05/2024"},
		{"03/15/24", "03/15/2024"},
		{"", ""},
		{"March 5", "March 5"},
		{"not a date", "not a date"},
	}
	for _, tt := range tests {
		if got := FormatCell(KindDate, tt.value); got != tt.want {
			t.Errorf("FormatCell(KindDate, %q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatCell_Currency(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"39.95", "$39.95"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"0", "$0.00"},
		{"-1234.56", "$-1,234.56"},
		{"", ""},
		{"n/a", "n/a"},
	}
	for _, tt := range tests {
		if got := FormatCell(KindCurrency, tt.value); got != tt.want {
			t.Errorf("FormatCell(KindCurrency, %q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatCell_Qty(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"25", "25"},
		{"999", "999"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"1234567", "1,234,567"},
		{"-1000", "-1,000"},
		{"", ""},
		{"25.0", "25.0"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		if got := FormatCell(KindQty, tt.value); got != tt.want {
			t.Errorf("FormatCell(KindQty, %q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatCell_OORSerial(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"short text renders in full", "1000-1010,1050", "1000-1010, 1050"},
		{"long text summarizes", "1000-1010, 2000-2010, 3000-3010, 4000-4010", "4 entries (44)"},
		{"invalid passes through", "abc", "abc"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(KindOORSerial, tt.value); got != tt.want {
				t.Errorf("FormatCell(KindOORSerial, %q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatCell_Text(t *testing.T) {
	if got := FormatCell(KindText, "MTR-100"); got != "MTR-100" {
		t.Errorf("FormatCell(KindText, %q) = %q, want unchanged", "MTR-100", got)
	}
	if got := FormatCell(KindText, ""); got != "" {
		t.Errorf("FormatCell(KindText, \"\") = %q, want empty", got)
	}
}

func TestTooltipForOOR(t *testing.T) {
	got := TooltipForOOR("1000-1002, 2000")
	want := "1. 1000-1002 (3 items)\n2. 2000 (1 item)\n\nTotal: 4 items"
	if got != want {
		t.Errorf("TooltipForOOR() = %q, want %q", got, want)
	}
}

func TestTooltipForOOR_NoTooltip(t *testing.T) {
	for _, text := range []string{"", "   ", "abc", "10-5"} {
		if got := TooltipForOOR(text); got != "" {
			t.Errorf("TooltipForOOR(%q) = %q, want empty", text, got)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
		{"1234.56", "1,234.56"},
		{"-1234.56", "-1,234.56"},
		{"-999", "-999"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
