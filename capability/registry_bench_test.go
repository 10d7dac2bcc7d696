package capability_test

import (
	"testing"

	"github.com/openclc-dev/openclc-front-sdk/capability"
	"github.com/openclc-dev/openclc-front-sdk/dialect"
)

func BenchmarkIsSupported(b *testing.B) {
	reg := capability.New()
	reg.Support("cl_khr_fp16", true)
	cfg := dialect.Config{Version: dialect.V300}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.IsSupported("cl_khr_fp16", cfg)
	}
}

func BenchmarkEnableSupportedCore(b *testing.B) {
	reg := capability.New()
	cfg := dialect.Config{Version: dialect.V300}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.EnableSupportedCore(cfg)
	}
}
