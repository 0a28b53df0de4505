package telemetry

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Update
	}{
		{
			name: "mixed keys",
			line: "cpu:57,mem:12,ident",
			want: []Update{{Kind: KindCPU, Value: 57}, {Kind: KindMem, Value: 12}, {Kind: KindIdentify}},
		},
		{
			name: "order independent",
			line: "ident,mem:12,cpu:57",
			want: []Update{{Kind: KindIdentify}, {Kind: KindMem, Value: 12}, {Kind: KindCPU, Value: 57}},
		},
		{
			name: "temperatures",
			line: "cpu_temp:45,gpu_temp:0",
			want: []Update{{Kind: KindCPUTemp, Value: 45}, {Kind: KindGPUTemp, Value: 0}},
		},
		{
			name: "unknown key skipped",
			line: "disk:80,cpu:3",
			want: []Update{{Kind: KindCPU, Value: 3}},
		},
		{
			name: "missing value skipped",
			line: "cpu,mem:,cpu_temp:7",
			want: []Update{{Kind: KindCPUTemp, Value: 7}},
		},
		{
			name: "empty key skipped",
			line: ":5,,mem:9",
			want: []Update{{Kind: KindMem, Value: 9}},
		},
		{
			name: "malformed number is zero",
			line: "cpu:abc,mem:12x",
			want: []Update{{Kind: KindCPU, Value: 0}, {Kind: KindMem, Value: 12}},
		},
		{
			name: "wraps modulo 256",
			line: "cpu:300,mem:-1",
			want: []Update{{Kind: KindCPU, Value: 44}, {Kind: KindMem, Value: 255}},
		},
		{
			name: "ident ignores value",
			line: "ident:x",
			want: []Update{{Kind: KindIdentify}},
		},
		{
			name: "case sensitive keys",
			line: "CPU:5,Mem:5",
			want: nil,
		},
		{
			name: "cap of eight tokens",
			line: "cpu:1,cpu:2,cpu:3,cpu:4,cpu:5,cpu:6,cpu:7,cpu:8,cpu:9,mem:1",
			want: []Update{
				{Kind: KindCPU, Value: 1}, {Kind: KindCPU, Value: 2}, {Kind: KindCPU, Value: 3}, {Kind: KindCPU, Value: 4},
				{Kind: KindCPU, Value: 5}, {Kind: KindCPU, Value: 6}, {Kind: KindCPU, Value: 7}, {Kind: KindCPU, Value: 8},
			},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Parse([]byte(tt.line))
			got := b.Updates()
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Parse(%q)[%d] = %+v, want %+v", tt.line, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAtou8(t *testing.T) {
	tests := []struct {
		in   string
		want uint8
	}{
		{"0", 0},
		{"57", 57},
		{"  8", 8},
		{"+9", 9},
		{"255", 255},
		{"256", 0},
		{"57\r", 57},
		{"", 0},
		{"-", 0},
		{"x1", 0},
	}
	for _, tt := range tests {
		if got := atou8([]byte(tt.in)); got != tt.want {
			t.Fatalf("atou8(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for k, spec := range keys {
		if spec.kind.String() != k {
			t.Fatalf("Kind(%d).String() = %q, want %q", spec.kind, spec.kind.String(), k)
		}
	}
	if Kind(0).String() != "unknown" {
		t.Fatalf("Kind(0).String() = %q", Kind(0).String())
	}
}
