// Package selftest exercises the storage adapter against the live container.
//
// It uploads a small probe blob, verifies it exists and shows up in a
// prefixed listing, downloads it back and compares bytes, assembles its
// access URL, then deletes it, checking both that the first delete reports
// success and that a second delete of the now-absent blob reports failure.
// The run stops at the first step that misbehaves.
//
// This is a manual, operator-invoked check (mediastore selftest), not part
// of any scheduled pipeline. It needs real credentials and leaves the
// container as it found it when all steps pass.
package selftest
