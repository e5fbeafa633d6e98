package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		segment string
		want    string
	}{
		{segment: "stick", want: "Stick"},
		{segment: "diamond_sword", want: "Diamond Sword"},
		{segment: "tnt_minecart", want: "Tnt Minecart"},
		{segment: "music_disc_11", want: "Music Disc 11"},
		{segment: "light_gray_stained_glass_pane", want: "Light Gray Stained Glass Pane"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.segment, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FallbackName(tt.segment))
		})
	}
}

func TestSegment(t *testing.T) {
	t.Parallel()

	seg, err := Segment(Identifier("minecraft", "oak_log"))
	require.NoError(t, err)
	assert.Equal(t, "oak_log", seg)

	for _, id := range []string{"", "oak_log", ":oak_log", "minecraft:"} {
		_, err := Segment(id)
		assert.ErrorIs(t, err, ErrMalformedIdentifier, id)
	}
}

func TestCategoriesOrder(t *testing.T) {
	t.Parallel()

	cats := Categories("minecraft")
	require.Len(t, cats, 3)

	assert.Equal(t, LangItem, cats[0].Lang)
	assert.Equal(t, []string{"assets/minecraft/models/item/"}, cats[0].Prefixes)
	assert.Equal(t, LangBlock, cats[1].Lang)
	assert.Contains(t, cats[1].Prefixes, "data/minecraft/recipes/")
	assert.Equal(t, LangBlock, cats[2].Lang)
	assert.Equal(t, []string{"assets/minecraft/models/block/"}, cats[2].Prefixes)
	assert.Equal(t, "assets/minecraft/lang/en_us.json", LangPath("minecraft"))
}
