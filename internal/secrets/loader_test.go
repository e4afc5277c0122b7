package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	keyFile := filepath.Join(dir, "gemini.key")
	if err := os.WriteFile(keyFile, []byte("  file-secret\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	emptyFile := filepath.Join(dir, "empty.key")
	if err := os.WriteFile(emptyFile, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	t.Setenv("TENDER_SCOUT_TEST_SECRET", "env-secret")
	t.Setenv("TENDER_SCOUT_TEST_EMPTY", "   ")

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "file wins over env and value",
			src: Source{
				Name:  "gemini api key",
				File:  keyFile,
				Env:   "TENDER_SCOUT_TEST_SECRET",
				Value: "inline",
			},
			want: "file-secret",
		},
		{
			name: "env wins over value",
			src: Source{
				Name:  "gemini api key",
				Env:   "TENDER_SCOUT_TEST_SECRET",
				Value: "inline",
			},
			want: "env-secret",
		},
		{
			name: "empty env falls through to value",
			src: Source{
				Env:   "TENDER_SCOUT_TEST_EMPTY",
				Value: " inline ",
			},
			want: "inline",
		},
		{
			name:    "missing file is an error",
			src:     Source{Name: "gemini api key", File: filepath.Join(dir, "absent.key")},
			wantErr: "reading gemini api key from file",
		},
		{
			name:    "empty file is an error",
			src:     Source{Name: "gemini api key", File: emptyFile},
			wantErr: "is empty",
		},
		{
			name:    "nothing configured",
			src:     Source{Name: "gemini api key"},
			wantErr: "gemini api key is not configured",
		},
		{
			name:    "unnamed source uses generic name",
			src:     Source{},
			wantErr: "secret is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %q, want %q", got, tt.want)
			}
		})
	}
}
