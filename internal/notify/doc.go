// Package notify delivers results digests when new finals complete. The
// core analysis knows nothing about delivery; it hands a Digest to whatever
// Notifier the CLI wired up.
package notify
