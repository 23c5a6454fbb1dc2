package ports

import "github.com/AntonioJCosta/stocker/internal/core/domain/drug"

/*
DrugStorage defines the flat-file persistence used by the save command and at
start-up. Each drug occupies one line in its String form.
*/
type DrugStorage interface {
	// WriteFile truncates path and writes content.
	WriteFile(path, content string) error
	// AppendFile appends content followed by a newline, creating path if needed.
	AppendFile(path, content string) error
	// Load reads every record from path. A missing file yields no records and no error.
	Load(path string) ([]drug.Drug, error)
}
