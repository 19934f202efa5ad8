package kv

import (
	"context"
	"path/filepath"
	"testing"

	"mealplanner/internal/config"
)

func TestMakeStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		wantErr bool
	}{
		{name: "default is file", cfg: config.StorageConfig{Dir: dir}},
		{name: "memory", cfg: config.StorageConfig{Backend: "memory"}},
		{name: "sqlite", cfg: config.StorageConfig{Backend: "sqlite", SQLitePath: filepath.Join(dir, "kv.db")}},
		{name: "azblob without account", cfg: config.StorageConfig{Backend: "azblob"}, wantErr: true},
		{name: "unknown", cfg: config.StorageConfig{Backend: "floppy"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := MakeStore(ctx, tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got store %T", s)
				}
				return
			}
			if err != nil {
				t.Fatalf("make store: %v", err)
			}
			if err := s.Set(ctx, "probe", "1"); err != nil {
				t.Fatalf("set on %T: %v", s, err)
			}
		})
	}
}
