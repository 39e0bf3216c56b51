// Package project builds and writes the rig tool's .aprj project file.
//
// A project is a JSON object graph with $id/$ref links: one header object,
// an animation entry per matched mapping rule or normal clip, and a typed
// layer list per entry. Build resolves expanded binding records against the
// collected additive clips and allocates ids in the exact order the rig tool
// expects; Write serializes the document under a file lock so concurrent runs
// cannot interleave on the same project path.
//
// Config is an immutable value assembled by the caller; nothing in this
// package reads shared state.
package project
