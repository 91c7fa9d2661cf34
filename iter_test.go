package xeui

import (
	"slices"
	"testing"
)

func addrStrings(addrs []Addr) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

func TestRange(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			"small_range", "00:00:00:00:00:01", "00:00:00:00:00:03",
			[]string{"00:00:00:00:00:01", "00:00:00:00:00:02", "00:00:00:00:00:03"},
		},
		{
			"single", "a0:b1:c2:d3:e4:f5", "a0:b1:c2:d3:e4:f5",
			[]string{"a0:b1:c2:d3:e4:f5"},
		},
		{
			"carry_boundary", "00:00:00:00:00:fe", "00:00:00:00:01:01",
			[]string{"00:00:00:00:00:fe", "00:00:00:00:00:ff", "00:00:00:00:01:00", "00:00:00:00:01:01"},
		},
		{
			"from_greater_than_to", "00:00:00:00:00:05", "00:00:00:00:00:01",
			nil,
		},
		{
			"ends_at_broadcast", "ff:ff:ff:ff:ff:fe", "ff:ff:ff:ff:ff:ff",
			[]string{"ff:ff:ff:ff:ff:fe", "ff:ff:ff:ff:ff:ff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := addrStrings(slices.Collect(Range(MustParse(tt.from), MustParse(tt.to))))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Range() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRange_EarlyBreak(t *testing.T) {
	count := 0
	for range Range(Zero(), Broadcast()) {
		count++
		if count == 10 {
			break
		}
	}
	if count != 10 {
		t.Errorf("iterated %d addresses, want 10", count)
	}
}

func TestRangeN(t *testing.T) {
	tests := []struct {
		name  string
		start string
		n     int
		want  []string
	}{
		{
			"three", "00:00:00:00:00:01", 3,
			[]string{"00:00:00:00:00:01", "00:00:00:00:00:02", "00:00:00:00:00:03"},
		},
		{"zero_count", "00:00:00:00:00:01", 0, nil},
		{"negative_count", "00:00:00:00:00:01", -5, nil},
		{
			"truncated_at_broadcast", "ff:ff:ff:ff:ff:fe", 5,
			[]string{"ff:ff:ff:ff:ff:fe", "ff:ff:ff:ff:ff:ff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := addrStrings(slices.Collect(RangeN(MustParse(tt.start), tt.n)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("RangeN() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRangeWithIndex(t *testing.T) {
	from := MustParse("00:00:00:00:00:05")
	to := MustParse("00:00:00:00:00:07")

	var indices []int
	var addrs []string
	for i, addr := range RangeWithIndex(from, to) {
		indices = append(indices, i)
		addrs = append(addrs, addr.String())
	}

	if !slices.Equal(indices, []int{0, 1, 2}) {
		t.Errorf("indices = %v, want [0 1 2]", indices)
	}
	want := []string{"00:00:00:00:00:05", "00:00:00:00:00:06", "00:00:00:00:00:07"}
	if !slices.Equal(addrs, want) {
		t.Errorf("addrs = %v, want %v", addrs, want)
	}
}

func TestRangeReverse(t *testing.T) {
	from := MustParse("00:00:00:00:00:01")
	to := MustParse("00:00:00:00:00:03")

	got := addrStrings(slices.Collect(RangeReverse(from, to)))
	want := []string{"00:00:00:00:00:03", "00:00:00:00:00:02", "00:00:00:00:00:01"}
	if !slices.Equal(got, want) {
		t.Errorf("RangeReverse() = %v, want %v", got, want)
	}

	t.Run("invalid_range", func(t *testing.T) {
		if got := slices.Collect(RangeReverse(to, from)); got != nil {
			t.Errorf("RangeReverse() = %v, want empty", got)
		}
	})

	t.Run("reaches_zero", func(t *testing.T) {
		got := addrStrings(slices.Collect(RangeReverse(Zero(), MustParse("00:00:00:00:00:01"))))
		want := []string{"00:00:00:00:00:01", "00:00:00:00:00:00"}
		if !slices.Equal(got, want) {
			t.Errorf("RangeReverse() = %v, want %v", got, want)
		}
	})
}

func TestRangeReverseWithIndex(t *testing.T) {
	from := MustParse("00:00:00:00:00:01")
	to := MustParse("00:00:00:00:00:03")

	var indices []int
	var addrs []string
	for i, addr := range RangeReverseWithIndex(from, to) {
		indices = append(indices, i)
		addrs = append(addrs, addr.String())
	}

	if !slices.Equal(indices, []int{0, 1, 2}) {
		t.Errorf("indices = %v, want [0 1 2]", indices)
	}
	want := []string{"00:00:00:00:00:03", "00:00:00:00:00:02", "00:00:00:00:00:01"}
	if !slices.Equal(addrs, want) {
		t.Errorf("addrs = %v, want %v", addrs, want)
	}
}

func TestCollectN(t *testing.T) {
	from := MustParse("00:00:00:00:00:01")
	to := MustParse("00:00:00:00:00:0a") // 10 个地址

	tests := []struct {
		name     string
		maxCount int
		wantLen  int
	}{
		{"limited", 3, 3},
		{"exact", 10, 10},
		{"more_than_available", 100, 10},
		{"unlimited", 0, 10},
		{"negative_means_unlimited", -1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectN(Range(from, to), tt.maxCount)
			if len(got) != tt.wantLen {
				t.Errorf("CollectN() length = %d, want %d", len(got), tt.wantLen)
			}
		})
	}

	t.Run("huge_max_count_does_not_preallocate", func(t *testing.T) {
		// 预分配上限受 1<<20 保护，不会按 maxCount 直接分配。
		got := CollectN(Range(from, to), 1<<30)
		if len(got) != 10 {
			t.Errorf("CollectN() length = %d, want 10", len(got))
		}
	})
}

func TestCount(t *testing.T) {
	from := MustParse("00:00:00:00:00:01")
	to := MustParse("00:00:00:00:00:05")
	if got := Count(Range(from, to)); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if got := Count(Range(to, from)); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestRangeCount(t *testing.T) {
	tests := []struct {
		name string
		from Addr
		to   Addr
		want uint64
	}{
		{"five", MustParse("00:00:00:00:00:01"), MustParse("00:00:00:00:00:05"), 5},
		{"single", MustParse("a0:b1:c2:d3:e4:f5"), MustParse("a0:b1:c2:d3:e4:f5"), 1},
		{"zero_to_zero", Zero(), Zero(), 1},
		{"inverted", MustParse("00:00:00:00:00:05"), MustParse("00:00:00:00:00:01"), 0},
		{"full_space", Zero(), Broadcast(), 1 << 48},
		{"across_bytes", MustParse("00:00:00:00:00:00"), MustParse("00:00:00:00:01:00"), 257},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangeCount(tt.from, tt.to); got != tt.want {
				t.Errorf("RangeCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
