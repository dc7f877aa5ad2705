package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		back := pt * PtToMm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
}

// TestParseLength 覆盖常见单位到 pt 的转换。
func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12", 12},
		{"12pt", 12},
		{"1in", 72},
		{"8.5in", 612},
		{"25.4mm", 72},
		{"2.54cm", 72},
		{" 10MM ", 10 * MmToPt},
	}
	for _, c := range cases {
		l, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("解析 %q 失败: %v", c.in, err)
		}
		if diff := math.Abs(l.ToPT() - c.want); diff > 1e-9 {
			t.Fatalf("%q 转 pt 期望 %g，实际 %g", c.in, c.want, l.ToPT())
		}
	}
	for _, bad := range []string{"", "mm", "abc", "12px", "nan", "inf"} {
		if _, err := ParseLength(bad); err == nil {
			t.Fatalf("%q 应解析失败", bad)
		}
	}
}

func TestLengthString(t *testing.T) {
	if got := (Length{Value: 20, Unit: UnitMM}).String(); got != "20mm" {
		t.Fatalf("got %q", got)
	}
	if got := (Length{Value: 8.5, Unit: UnitIN}).ToMM(); math.Abs(got-215.9) > 1e-9 {
		t.Fatalf("8.5in 转 mm 期望 215.9，实际 %g", got)
	}
}
