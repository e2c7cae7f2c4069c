package port

type ArtifactWriter interface {
	// EnsureDir creates the output directory if it does not exist yet and is
	// a no-op when it already does.
	EnsureDir(dir string) error
	// Write stores data under the given name inside dir, replacing any
	// previous artifact atomically.
	Write(dir, name string, data []byte) error
}
