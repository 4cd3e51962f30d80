package codec

import (
	"bytes"
	"testing"
)

func BenchmarkRowWriter_FixedOnly(b *testing.B) {
	w, err := NewRowWriter(4, 0)
	if err != nil {
		b.Fatalf("NewRowWriter failed: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Reset()
		w.WriteInt64(0, int64(i))
		w.WriteInt64(1, int64(i)*2)
		w.WriteFloat64(2, float64(i))
		w.WriteNull(3)
		w.Finish()
	}
}

func BenchmarkRowWriter_VariableLength(b *testing.B) {
	sizes := []struct {
		name  string
		value []byte
	}{
		{"small_64B", bytes.Repeat([]byte("x"), 64)},
		{"medium_1KB", bytes.Repeat([]byte("x"), 1024)},
		{"large_64KB", bytes.Repeat([]byte("x"), 64*1024)},
	}

	for _, s := range sizes {
		b.Run(s.name, func(b *testing.B) {
			w, err := NewRowWriter(2, 64)
			if err != nil {
				b.Fatalf("NewRowWriter failed: %v", err)
			}

			b.ResetTimer()
			b.ReportAllocs()
			b.SetBytes(int64(len(s.value)))
			for i := 0; i < b.N; i++ {
				w.Reset()
				w.WriteInt64(0, int64(i))
				if err := w.WriteBytes(1, s.value); err != nil {
					b.Fatalf("WriteBytes failed: %v", err)
				}
				w.Finish()
			}
		})
	}
}
