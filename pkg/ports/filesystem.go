package ports

// Filesystem loads automation file content. The console performs exactly one
// read per import; there is no watching or caching behind this port.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
}
