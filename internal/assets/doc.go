// Package assets collects and classifies the animation files a project is
// built from: the idle animation, the left and right hand pose files, the
// skeleton model, and the additive and normal clips.
//
// The original workflow dropped files onto labeled slots; here explicit paths
// and an optional scan directory play that role. The result is an immutable
// Collection plus the shared asset prefix derived from the idle file name,
// so the expansion and writing stages never touch mutable input state.
package assets
