// Package layout resolves the directory contract between the host-discovered
// entry file and the backend it binds: the backend lives in a sibling directory
// of the adapter's own directory, and that directory must exist and be readable
// when the function instance starts.
package layout
