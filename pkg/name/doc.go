// Package name models an atomised scientific name and rebuilds display
// strings from it. A Name is constructed once from its raw Parts — leading
// hybrid markers and the notho prefix are stripped at that point — and is
// immutable afterwards. Build assembles a rendering from an Options value;
// the four standard profiles (canonical, canonical with markers, canonical
// complete, full) are exposed as presets and as convenience methods.
package name
