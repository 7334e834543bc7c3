package domain

import "io"

// UploadFile is a readable byte source with a name. It is the narrow
// capability ingestion requires from any adapter; *os.File satisfies it.
type UploadFile interface {
	io.Reader

	// Name returns the file name (a path is acceptable; only the base
	// name is used to derive the patient identifier).
	Name() string
}
