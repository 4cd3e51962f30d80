package codec

import (
	"errors"
	"testing"
)

func TestBitsetWidth(t *testing.T) {
	testCases := []struct {
		numFields int
		want      int
	}{
		{0, 0},
		{1, 8},
		{2, 8},
		{64, 8},
		{65, 16},
		{128, 16},
		{129, 24},
	}

	for _, tc := range testCases {
		if got := BitsetWidth(tc.numFields); got != tc.want {
			t.Errorf("BitsetWidth(%d) = %d, want %d", tc.numFields, got, tc.want)
		}
	}
}

func TestFixedRowSize(t *testing.T) {
	testCases := []struct {
		name      string
		numFields int
		extra     int
		want      int
		wantErr   error
	}{
		{name: "zero fields", numFields: 0, extra: 64, want: 0},
		{name: "two fields", numFields: 2, extra: 64, want: 8 + 16},
		{name: "full word", numFields: 64, extra: 0, want: 8 + 512},
		{name: "word boundary", numFields: 65, extra: 0, want: 16 + 520},
		{name: "negative fields", numFields: -1, extra: 64, wantErr: ErrInvalidArgument},
		{name: "negative extra", numFields: 2, extra: -1, wantErr: ErrInvalidArgument},
		{name: "too many fields", numFields: MaxBufferSize/8 + 1, extra: 0, wantErr: ErrBufferLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FixedRowSize(tc.numFields, tc.extra)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("FixedRowSize(%d, %d) error = %v, want %v", tc.numFields, tc.extra, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FixedRowSize(%d, %d) failed: %v", tc.numFields, tc.extra, err)
			}
			if got != tc.want {
				t.Errorf("FixedRowSize(%d, %d) = %d, want %d", tc.numFields, tc.extra, got, tc.want)
			}
			if want := BitsetWidth(tc.numFields) + 8*tc.numFields; got != want {
				t.Errorf("FixedRowSize(%d, %d) = %d, want bitset+8n = %d", tc.numFields, tc.extra, got, want)
			}
		})
	}
}

func TestGrowthTarget(t *testing.T) {
	testCases := []struct {
		name    string
		total   int
		needed  int
		want    int
		wantErr error
	}{
		{name: "doubles required length", total: 24, needed: 10, want: 68},
		{name: "zero extra still doubles", total: 24, needed: 0, want: 48},
		{name: "near limit caps at max", total: MaxBufferSize / 2, needed: 16, want: MaxBufferSize},
		{name: "exactly half caps at max", total: MaxBufferSize / 2, needed: 0, want: MaxBufferSize},
		{name: "overflow rejected", total: 16, needed: MaxBufferSize - 15, wantErr: ErrBufferLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GrowthTarget(tc.total, tc.needed)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("GrowthTarget(%d, %d) error = %v, want %v", tc.total, tc.needed, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GrowthTarget(%d, %d) failed: %v", tc.total, tc.needed, err)
			}
			if got != tc.want {
				t.Errorf("GrowthTarget(%d, %d) = %d, want %d", tc.total, tc.needed, got, tc.want)
			}
		})
	}
}
