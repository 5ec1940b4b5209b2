package match

import (
	"testing"

	"github.com/ytpick/ytpick/internal/model"
)

func TestBuildTableKeysAreSubsetOfCatalog(t *testing.T) {
	formats := []model.Format{
		{Height: 144, VCodec: "avc1"},
		{Height: 240, VCodec: "avc1"},
		{Height: 360, VCodec: "avc1"},
		{Height: 720, VCodec: "vp9"},
		{Height: 4320, VCodec: "av01"},
		{Height: 1081, VCodec: "avc1"},
	}

	table := BuildTable(formats)

	for h := range table {
		if !model.IsSupportedHeight(h) {
			t.Errorf("table contains unsupported height %d", h)
		}
	}

	if len(table) != 2 {
		t.Errorf("expected 2 entries (360, 720), got %d", len(table))
	}
}

func TestBuildTablePrefersLargerFilesize(t *testing.T) {
	formats := []model.Format{
		{FormatID: "a", Height: 720, VCodec: "avc1", Filesize: 50_000_000},
		{FormatID: "b", Height: 720, VCodec: "avc1", Filesize: 80_000_000},
		{FormatID: "c", Height: 720, VCodec: "avc1", Filesize: 60_000_000},
	}

	table := BuildTable(formats)

	got, ok := table[720]
	if !ok {
		t.Fatal("expected a 720p entry")
	}
	if got.FormatID != "b" {
		t.Errorf("expected format 'b' (80MB) to win, got %q", got.FormatID)
	}
}

func TestBuildTableTieKeepsFirstSeen(t *testing.T) {
	tests := []struct {
		name    string
		formats []model.Format
		wantID  string
	}{
		{
			name: "equal sizes",
			formats: []model.Format{
				{FormatID: "first", Height: 1080, VCodec: "avc1", Filesize: 100},
				{FormatID: "second", Height: 1080, VCodec: "avc1", Filesize: 100},
			},
			wantID: "first",
		},
		{
			name: "both unknown",
			formats: []model.Format{
				{FormatID: "first", Height: 1080, VCodec: "avc1"},
				{FormatID: "second", Height: 1080, VCodec: "avc1"},
			},
			wantID: "first",
		},
		{
			name: "challenger size unknown",
			formats: []model.Format{
				{FormatID: "first", Height: 1080, VCodec: "avc1", Filesize: 100},
				{FormatID: "second", Height: 1080, VCodec: "avc1"},
			},
			wantID: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := BuildTable(tt.formats)
			if got := table[1080].FormatID; got != tt.wantID {
				t.Errorf("expected %q to be kept, got %q", tt.wantID, got)
			}
		})
	}
}

func TestBuildTableSkipsAudioOnly(t *testing.T) {
	formats := []model.Format{
		{FormatID: "audio", Height: 720, VCodec: "none", Filesize: 999_000_000},
		{FormatID: "noheight", VCodec: "avc1", Filesize: 10},
	}

	table := BuildTable(formats)

	if len(table) != 0 {
		t.Errorf("expected empty table, got %d entries", len(table))
	}
}

func TestBuildTableKeepsMissingVCodec(t *testing.T) {
	// Some extractors emit formats without a vcodec field at all; only the
	// explicit "none" marker means audio-only.
	formats := []model.Format{
		{FormatID: "nullvcodec", Height: 720, Filesize: 50_000_000},
	}

	table := BuildTable(formats)

	got, ok := table[720]
	if !ok {
		t.Fatal("expected format with absent vcodec to be kept")
	}
	if got.FormatID != "nullvcodec" {
		t.Errorf("expected format 'nullvcodec', got %q", got.FormatID)
	}
}

func TestBuildTableEmptyInput(t *testing.T) {
	table := BuildTable(nil)
	if len(table) != 0 {
		t.Errorf("expected empty table for nil input, got %d entries", len(table))
	}

	table = BuildTable([]model.Format{})
	if len(table) != 0 {
		t.Errorf("expected empty table for empty input, got %d entries", len(table))
	}
}

func TestHeightsAreInCatalogOrder(t *testing.T) {
	formats := []model.Format{
		{Height: 2160, VCodec: "av01"},
		{Height: 360, VCodec: "avc1"},
		{Height: 1080, VCodec: "avc1"},
	}

	got := BuildTable(formats).Heights()
	want := []int{360, 1080, 2160}

	if len(got) != len(want) {
		t.Fatalf("expected %d heights, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heights[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
