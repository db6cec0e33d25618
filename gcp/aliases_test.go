package gcp

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveAssetType(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{
			name:  "known alias",
			value: "vm",
			want:  "compute.googleapis.com/Instance",
		},
		{
			name:  "another alias",
			value: "bucket",
			want:  "storage.googleapis.com/Bucket",
		},
		{
			name:  "full asset type passes through",
			value: "bigquery.googleapis.com/Dataset",
			want:  "bigquery.googleapis.com/Dataset",
		},
		{
			name:    "unknown alias",
			value:   "flying-toaster",
			wantErr: true,
		},
		{
			name:    "empty value",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAssetType(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveAssetType(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownResourceAlias) {
					t.Errorf("ResolveAssetType(%q) error = %v, want ErrUnknownResourceAlias", tt.value, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ResolveAssetType(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestAssetTypeAliasesSortedAndComplete(t *testing.T) {
	lines := AssetTypeAliases()
	if len(lines) != len(assetTypeAliases) {
		t.Fatalf("AssetTypeAliases() returned %d lines, want %d", len(lines), len(assetTypeAliases))
	}
	for i := 1; i < len(lines); i++ {
		if strings.Fields(lines[i-1])[0] >= strings.Fields(lines[i])[0] {
			t.Errorf("aliases not sorted: %q before %q", lines[i-1], lines[i])
		}
	}
}
