package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/stocker/internal/core/domain/drug"
)

func TestNewFileStorage(t *testing.T) {
	s := NewFileStorage()
	if s == nil {
		t.Fatal("NewFileStorage() returned nil")
	}
	if _, ok := s.(*FileStorage); !ok {
		t.Errorf("NewFileStorage() did not return a *FileStorage, got %T", s)
	}
}

func TestFileStorage_WriteThenAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "drugs.txt")
	s := NewFileStorage()

	if err := s.AppendFile(path, "stale"); err != nil {
		t.Fatalf("AppendFile() unexpected error = %v", err)
	}
	if err := s.WriteFile(path, ""); err != nil {
		t.Fatalf("WriteFile() unexpected error = %v", err)
	}
	if err := s.AppendFile(path, "one"); err != nil {
		t.Fatalf("AppendFile() unexpected error = %v", err)
	}
	if err := s.AppendFile(path, "two"); err != nil {
		t.Fatalf("AppendFile() unexpected error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error = %v", err)
	}
	if string(got) != "one\ntwo\n" {
		t.Errorf("file content = %q, want %q", got, "one\ntwo\n")
	}
}

func TestFileStorage_Load(t *testing.T) {
	aspirin := drug.Drug{Name: "Aspirin", ExpiryDate: "2025-01-01", SerialNumber: "SN1", Quantity: 10}
	panadol := drug.Drug{Name: "Panadol", ExpiryDate: "01/02/2024", SerialNumber: "PA1", Quantity: 3}

	tests := []struct {
		name      string
		content   *string
		want      []drug.Drug
		wantErrIs error
	}{
		{name: "missing file", content: nil, want: nil},
		{name: "empty file", content: ptr(""), want: nil},
		{
			name:    "records with blank line",
			content: ptr(aspirin.String() + "\n\n" + panadol.String() + "\n"),
			want:    []drug.Drug{aspirin, panadol},
		},
		{
			name:      "malformed line",
			content:   ptr(aspirin.String() + "\nnot a drug\n"),
			wantErrIs: drug.ErrMalformedLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "drugs.txt")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0600); err != nil {
					t.Fatalf("failed to seed %s: %v", path, err)
				}
			}

			got, err := NewFileStorage().Load(path)
			if tt.wantErrIs != nil {
				if !errors.Is(err, tt.wantErrIs) {
					t.Errorf("Load() error = %v, want %v", err, tt.wantErrIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }
