// Package registry provides a generic, thread-safe registry keyed by name.
//
// Rendering backends keep their command tables here. A table is built once
// from ordered layers (base, backend, domain) with Build, each later layer
// overriding entries of the earlier ones, and is frozen afterwards so it can
// be shared freely between concurrent renders.
package registry
