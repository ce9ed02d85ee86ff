// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uikit"
)

// compileToSPIRV compiles WGSL source to SPIR-V words through naga.
// SPIR-V is little-endian 32-bit words.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile WGSL: %w", err)
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// newShaderModule creates a shader module from WGSL source. The source
// is pre-compiled to SPIR-V so the Vulkan backend skips its own WGSL
// front end; if that fails the raw WGSL is handed to the driver stack
// instead.
func newShaderModule(device hal.Device, label, wgslSource string) (hal.ShaderModule, error) {
	words, err := compileToSPIRV(wgslSource)
	if err == nil {
		return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  label,
			Source: hal.ShaderSource{SPIRV: words},
		})
	}
	uikit.Logger().Debug("SPIR-V precompile failed, using WGSL source",
		slog.String("shader", label), slog.String("error", err.Error()))
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: wgslSource},
	})
}
