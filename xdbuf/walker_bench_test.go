package xdbuf

import "testing"

func BenchmarkStep(b *testing.B) {
	buf, err := New(0, 64, 64)
	if err != nil {
		b.Fatal(err)
	}
	w, err := buf.Walker(0, 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i += 2 {
		if err := w.Step(1, 1); err != nil {
			b.Fatal(err)
		}
		if err := w.Step(-1, -1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanUntil(b *testing.B) {
	buf, err := New(0, 64, 64)
	if err != nil {
		b.Fatal(err)
	}
	last := buf.Len() - 1
	if err := buf.Set(last, 1); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		w, err := buf.Walker(0, 0)
		if err != nil {
			b.Fatal(err)
		}
		if err := w.ScanUntil(buf, func(v, _ int) bool { return v == 1 }); err != nil {
			b.Fatal(err)
		}
	}
}
