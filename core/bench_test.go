// Package core_test provides benchmarks for core.Build.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/transitpath/core"
)

// BenchmarkBuild_Line measures building a single metro line of 64 stations.
func BenchmarkBuild_Line(b *testing.B) {
	const n = 64
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("S%02d", i)
	}
	vs := vtx(ids...)
	es := make([]core.Edge[span], 0, n-1)
	for i := 1; i < n; i++ {
		es = append(es, core.Edge[span]{From: ids[i-1], To: ids[i], Attr: span{1}})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Build(vs, es)
	}
}
