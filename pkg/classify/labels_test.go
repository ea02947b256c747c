package classify

import (
	"strings"
	"testing"
)

func TestReadLabels(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "one label per line",
			input: "cat\ndog\nbird\n",
			want:  []string{"cat", "dog", "bird"},
		},
		{
			name:  "no trailing newline",
			input: "cat\ndog",
			want:  []string{"cat", "dog"},
		},
		{
			name:  "blank lines skipped",
			input: "cat\n\ndog\n\n",
			want:  []string{"cat", "dog"},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  cat \n\tdog\n",
			want:  []string{"cat", "dog"},
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: true,
		},
		{
			name:    "only blank lines",
			input:   "\n\n\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLabels(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadLabels() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ReadLabels() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("label %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadLabels_MissingFile(t *testing.T) {
	if _, err := LoadLabels("testdata/does-not-exist.txt"); err == nil {
		t.Error("LoadLabels() error = nil, want error for missing file")
	}
}
