// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms lit and unlit scene meshes.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades meshes with Lambert diffuse, ambient, emissive and shadows.
//
//go:embed mesh.frag
var MeshFragmentShader string

// DepthVertexShader renders shadow casters into the light depth map.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader is empty; only depth is written.
//
//go:embed depth.frag
var DepthFragmentShader string
