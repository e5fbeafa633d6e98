package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mcitemid/pkg/items"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnWidths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		records  []items.Record
		wantID   int
		wantName int
	}{
		{name: "empty uses floors", wantID: 12, wantName: 22},
		{
			name:     "longest value plus padding",
			records:  []items.Record{{ID: "minecraft:stick", Name: "Stick"}, {ID: "minecraft:tnt", Name: "Block of TNT"}},
			wantID:   len("minecraft:stick") + 2,
			wantName: len("Block of TNT") + 2,
		},
		{
			name:     "no floor when records exist",
			records:  []items.Record{{ID: "m:a", Name: "A"}},
			wantID:   5,
			wantName: 3,
		},
		{
			name:     "runes not bytes",
			records:  []items.Record{{ID: "minecraft:e", Name: "Éclair"}},
			wantID:   13,
			wantName: 8,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idWidth, nameWidth := ColumnWidths(tt.records)
			assert.Equal(t, tt.wantID, idWidth)
			assert.Equal(t, tt.wantName, nameWidth)
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	records := []items.Record{
		{ID: "minecraft:diamond_sword", Name: "Diamond Sword"},
		{ID: "minecraft:stick", Name: "Stick"},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, records, "English Name"))

	pad := func(s string, n int) string { return s + strings.Repeat(" ", n-len(s)) }
	want := pad("ID", 25) + " | " + pad("English Name", 15) + "\n" +
		strings.Repeat("-", 25) + "-+-" + strings.Repeat("-", 15) + "\n" +
		pad("minecraft:diamond_sword", 25) + " | " + pad("Diamond Sword", 15) + "\n" +
		pad("minecraft:stick", 25) + " | " + pad("Stick", 15) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil, ""))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID"+strings.Repeat(" ", 10)+" | "+DefaultTitle+strings.Repeat(" ", 22-len(DefaultTitle)), lines[0])
	assert.Equal(t, strings.Repeat("-", 12)+"-+-"+strings.Repeat("-", 22), lines[1])
}

func TestRenderPadsUnicodeByRunes(t *testing.T) {
	t.Parallel()

	records := []items.Record{{ID: "minecraft:e", Name: "Éclair"}}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, records, "Name"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "minecraft:e   | Éclair  ", lines[2])
}

func TestWriteFileOverwrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := "/out/minecraft_items.txt"
	require.NoError(t, afero.WriteFile(fs, path, []byte(strings.Repeat("stale\n", 100)), 0o644))

	records := []items.Record{{ID: "minecraft:stick", Name: "Stick"}}
	require.NoError(t, WriteFile(fs, path, records, DefaultTitle))

	got, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, Render(&want, records, DefaultTitle))
	assert.Equal(t, want.String(), string(got))
}

func TestWriteFileError(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := WriteFile(fs, "/out/minecraft_items.txt", nil, DefaultTitle)
	assert.Error(t, err)
}
