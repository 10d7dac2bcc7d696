package capability

import "github.com/openclc-dev/openclc-front-sdk/dialect"

// builtinTable is the fixed universe of known capability names with their
// static availability and core/optional-core data. It is process-wide,
// read-only domain knowledge; New copies it into every registry so
// compilations never observe each other's Supported/Enabled flags.
//
// The Supported and Enabled zero values are deliberate: both start false
// and are only raised by target probing and enable directives.
var builtinTable = map[string]Info{
	// Extensions promoted to core in 1.1.
	"cl_khr_byte_addressable_store":        {Available: dialect.V100, Core: MaskV110Plus},
	"cl_khr_global_int32_base_atomics":     {Available: dialect.V100, Core: MaskV110Plus},
	"cl_khr_global_int32_extended_atomics": {Available: dialect.V100, Core: MaskV110Plus},
	"cl_khr_local_int32_base_atomics":      {Available: dialect.V100, Core: MaskV110Plus},
	"cl_khr_local_int32_extended_atomics":  {Available: dialect.V100, Core: MaskV110Plus},

	// Double precision: optional core from 1.2 onward.
	"cl_khr_fp64": {Available: dialect.V100, OptionalCore: MaskV120Plus},

	// 3D image writes: core in 2.0 only, optional core again in 3.0.
	"cl_khr_3d_image_writes": {Available: dialect.V100, Core: MaskV200, OptionalCore: MaskV300},

	// Pure extensions available from 1.0.
	"cl_khr_fp16":                   {Available: dialect.V100},
	"cl_khr_int64_base_atomics":     {Available: dialect.V100},
	"cl_khr_int64_extended_atomics": {Available: dialect.V100},
	"cl_khr_select_fprounding_mode": {Available: dialect.V100},
	"cl_khr_gl_sharing":             {Available: dialect.V100},
	"cl_khr_icd":                    {Available: dialect.V100},

	// Extensions introduced in 1.1.
	"cl_khr_gl_event":      {Available: dialect.V110},
	"cl_khr_d3d10_sharing": {Available: dialect.V110},

	// Extensions introduced in 1.2.
	"cl_khr_d3d11_sharing":       {Available: dialect.V120},
	"cl_khr_dx9_media_sharing":   {Available: dialect.V120},
	"cl_khr_image2d_from_buffer": {Available: dialect.V120},
	"cl_khr_initialize_memory":   {Available: dialect.V120},
	"cl_khr_gl_depth_images":     {Available: dialect.V120},
	"cl_khr_spir":                {Available: dialect.V120},
	"cl_khr_depth_images":        {Available: dialect.V120},

	// Extensions introduced in 2.0.
	"cl_khr_egl_event":         {Available: dialect.V200},
	"cl_khr_egl_image":         {Available: dialect.V200},
	"cl_khr_mipmap_image":      {Available: dialect.V200},
	"cl_khr_srgb_image_writes": {Available: dialect.V200},
	"cl_khr_subgroups":         {Available: dialect.V200},

	// 3.0 feature macros: the dialect offers these as optional core in
	// 3.0, and targets report them through the same feature map as
	// extensions.
	"__opencl_c_3d_image_writes":                 {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_atomic_order_acq_rel":            {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_atomic_order_seq_cst":            {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_atomic_scope_device":             {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_atomic_scope_all_devices":        {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_device_enqueue":                  {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_generic_address_space":           {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_fp64":                            {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_images":                          {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_int64":                           {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_pipes":                           {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_program_scope_global_variables":  {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_read_write_images":               {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_subgroups":                       {Available: dialect.V300, OptionalCore: MaskV300},
	"__opencl_c_work_group_collective_functions": {Available: dialect.V300, OptionalCore: MaskV300},
}
