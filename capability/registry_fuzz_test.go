package capability_test

import (
	"testing"

	"github.com/openclc-dev/openclc-front-sdk/capability"
	"github.com/openclc-dev/openclc-front-sdk/dialect"
)

func FuzzRegistryQueries(f *testing.F) {
	f.Add("cl_khr_fp64")
	f.Add("cl_khr_made_up")
	f.Add("")
	f.Add("__opencl_c_images")

	f.Fuzz(func(t *testing.T, name string) {
		reg := capability.New()
		reg.Support(name, true)
		reg.Enable(name, true)

		// Arbitrary names must never panic or violate the partition:
		// supported means exactly one classification, unsupported none.
		for _, v := range dialect.Versions() {
			cfg := dialect.Config{Version: v}
			count := 0
			if reg.IsSupportedCore(name, cfg) {
				count++
			}
			if reg.IsSupportedOptionalCore(name, cfg) {
				count++
			}
			if reg.IsSupportedExtension(name, cfg) {
				count++
			}
			if reg.IsSupported(name, cfg) {
				if count != 1 {
					t.Fatalf("%q at %s: %d classifications for supported capability", name, v, count)
				}
			} else if count != 0 {
				t.Fatalf("%q at %s: %d classifications for unsupported capability", name, v, count)
			}
		}
	})
}
