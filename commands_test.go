package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/rpgplatformer/storage"
)

func TestPrintRuns(t *testing.T) {
	tests := []struct {
		name  string
		runs  []storage.Run
		total int
		want  []string
	}{
		{
			name: "empty",
			want: []string{"No runs recorded yet."},
		},
		{
			name: "shows total",
			runs: []storage.Run{
				{Duration: 95 * time.Second, Deaths: 1, EnemiesDefeated: 4, Character: "knight"},
				{Duration: 120 * time.Second, Deaths: 2, EnemiesDefeated: 3, Character: "wizard"},
			},
			total: 7,
			want:  []string{"1m35s", "knight", "wizard", "2 of 7 recorded runs shown"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			printRuns(&buf, tc.runs, tc.total)
			out := buf.String()
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Fatalf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}
