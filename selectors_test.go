package combokit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightedItem(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	m := Init(cfg, fruits())
	_, ok := HighlightedItem(cfg, m)
	assert.False(t, ok)

	m = drive(cfg, m, FocusedInput{}, PressedVerticalArrow{Arrow: Down}, PressedVerticalArrow{Arrow: Down})
	got, ok := HighlightedItem(cfg, m)
	require.True(t, ok)
	assert.Equal(t, optBanana, got)
}

func TestSelectedItemIsDisplayOrderedFirst(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	m := Init(cfg, fruits(),
		WithSelectMode[option](MultiSelect(LeftToRight)),
		WithSelected[option](optApple, optBanana))

	got, ok := SelectedItem(m)
	require.True(t, ok)
	assert.Equal(t, optBanana, got, "left-to-right puts the newest selection first")

	_, ok = SelectedItem(Init(cfg, fruits()))
	assert.False(t, ok)
}

func TestCurrentInputValue(t *testing.T) {
	t.Parallel()

	sentinel := testConfig(WithEmptyItem[option](func(o option) bool { return o.ID == "none" }))

	tests := []struct {
		name  string
		build func(cfg Config[option]) Model[option]
		cfg   Config[option]
		want  string
	}{
		{
			name: "raw text while focused and searchable",
			cfg:  testConfig(),
			build: func(cfg Config[option]) Model[option] {
				return drive(cfg, Init(cfg, fruits()), FocusedInput{}, InputtedValue{Value: "che"})
			},
			want: "che",
		},
		{
			name: "selection echo while blurred",
			cfg:  testConfig(),
			build: func(cfg Config[option]) Model[option] {
				return Init(cfg, fruits(), WithSelected[option](optCherry))
			},
			want: "Cherry",
		},
		{
			name: "sentinel text when nothing is selected",
			cfg:  sentinel,
			build: func(cfg Config[option]) Model[option] {
				return Init(cfg, append(fruits(), optNone))
			},
			want: "None",
		},
		{
			name: "empty without selection or sentinel",
			cfg:  testConfig(),
			build: func(cfg Config[option]) Model[option] {
				return Init(cfg, fruits())
			},
			want: "",
		},
		{
			name: "empty while blurred in multi-select",
			cfg:  testConfig(),
			build: func(cfg Config[option]) Model[option] {
				return Init(cfg, fruits(),
					WithSelectMode[option](MultiSelect(RightToLeft)),
					WithSelected[option](optApple))
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := tt.build(tt.cfg)
			assert.Equal(t, tt.want, CurrentInputValue(tt.cfg, m))
		})
	}
}

func TestItemStatusOf(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	m := Init(cfg, fruits(),
		WithSelectMode[option](MultiSelect(RightToLeft)),
		WithSelected[option](optBanana))
	m = drive(cfg, m, FocusedInput{}, PressedVerticalArrow{Arrow: Down})
	require.True(t, m.Highlighted())

	// the multi-select arrow anchors the highlight on the selected banana
	assert.Equal(t, ItemSelectedAndHighlighted, ItemStatusOf(cfg, m, optBanana))
	assert.Equal(t, ItemUnselected, ItemStatusOf(cfg, m, optApple))

	m = drive(cfg, m, SetHighlightIndex{Index: 0})
	require.True(t, m.Highlighted())
	assert.Equal(t, ItemHighlighted, ItemStatusOf(cfg, m, optApple))
	assert.Equal(t, ItemSelected, ItemStatusOf(cfg, m, optBanana))

	assert.True(t, IsItemSelected(cfg, m, optBanana))
	assert.False(t, IsItemSelected(cfg, m, optCherry))
	assert.True(t, IsItemHighlighted(cfg, m, optApple))
}
