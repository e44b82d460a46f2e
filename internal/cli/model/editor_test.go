package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdm/internal/domain/entity"
)

var (
	serverSchema  = entity.ConfigSchema{Key: "server", ValueType: entity.ConfigTypeBoolean, Section: "RPC", Default: "0"}
	rpcportSchema = entity.ConfigSchema{Key: "rpcport", ValueType: entity.ConfigTypeInteger, Section: "RPC", Default: "8332"}
	datadirSchema = entity.ConfigSchema{Key: "datadir", ValueType: entity.ConfigTypeString, Section: "Core"}
)

func testSections() []entity.ConfigSection {
	return []entity.ConfigSection{
		{Name: "Core", Items: []*entity.ConfigEntry{entity.NewDefaultEntry(&datadirSchema)}},
		{Name: "Custom", Items: []*entity.ConfigEntry{entity.NewUnknownEntry("foo", "bar")}},
		{Name: "RPC", Items: []*entity.ConfigEntry{
			entity.NewKnownEntry(&serverSchema, "1", true),
			entity.NewDefaultEntry(&rpcportSchema),
		}},
	}
}

func TestEditor_SectionNavigationIsCyclic(t *testing.T) {
	e := NewEditor(testSections())
	e.SelectSection(2)
	e.NextItem()
	require.Equal(t, 1, e.ItemIndex())

	for range 3 {
		e.NextSection()
	}
	assert.Equal(t, 2, e.SectionIndex())
	assert.Equal(t, 0, e.ItemIndex(), "changing section resets the item cursor")

	e.SelectSection(0)
	e.PreviousSection()
	assert.Equal(t, 2, e.SectionIndex())
}

func TestEditor_ItemNavigationIsCyclic(t *testing.T) {
	e := NewEditor(testSections())
	e.SelectSection(2)

	e.NextItem()
	e.NextItem()
	assert.Equal(t, 0, e.ItemIndex(), "N steps forward return to the start")

	e.PreviousItem()
	assert.Equal(t, 1, e.ItemIndex(), "previous from 0 lands on the last item")
}

func TestEditor_EmptyIsNoop(t *testing.T) {
	e := NewEditor(nil)

	assert.NotPanics(t, func() {
		e.NextSection()
		e.PreviousSection()
		e.NextItem()
		e.PreviousItem()
		e.SelectItem(4)
		e.SelectSection(1)
		e.ToggleEnabled()
		e.CommitEdit("x")
	})
	assert.False(t, e.Activate())
	assert.Nil(t, e.Current())
	assert.Equal(t, 0, e.SectionIndex())

	e.Load([]entity.ConfigSection{{Name: "Empty"}})
	e.NextItem()
	assert.Equal(t, 0, e.ItemIndex())
	assert.Nil(t, e.Current())
}

func TestEditor_ToggleEnabled(t *testing.T) {
	e := NewEditor(testSections())

	e.ToggleEnabled()
	assert.True(t, e.Current().Enabled)
	e.ToggleEnabled()
	assert.False(t, e.Current().Enabled)

	e.SelectSection(1)
	e.ToggleEnabled()
	assert.True(t, e.Current().Enabled, "custom keys stay enabled")
}

func TestEditor_BooleanActivateIsIdempotentInPairs(t *testing.T) {
	tests := []struct {
		name  string
		start string
	}{
		{"starts at 1", "1"},
		{"starts at 0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := testSections()
			sections[2].Items[0].Value = tt.start
			e := NewEditor(sections)
			e.SelectSection(2)

			assert.False(t, e.Activate())
			assert.NotEqual(t, tt.start, e.Current().Value)
			assert.False(t, e.Activate())
			assert.Equal(t, tt.start, e.Current().Value)
			assert.True(t, e.Current().Enabled)
		})
	}
}

func TestEditor_ActivateBooleanEnablesDefault(t *testing.T) {
	sections := testSections()
	sections[2].Items[0] = entity.NewDefaultEntry(&serverSchema)
	e := NewEditor(sections)
	e.SelectSection(2)

	e.Activate()

	assert.Equal(t, "1", e.Current().Value)
	assert.True(t, e.Current().Enabled)
}

func TestEditor_ActivateNonBooleanRequestsValueEdit(t *testing.T) {
	e := NewEditor(testSections())
	e.SelectSection(2)
	e.SelectItem(1)

	assert.True(t, e.Activate())
	assert.Equal(t, "8332", e.Current().Value, "value is untouched until commit")
	assert.False(t, e.Current().Enabled)

	e.CommitEdit("18332")
	assert.Equal(t, "18332", e.Current().Value)
	assert.True(t, e.Current().Enabled)
}

func TestEditor_SelectItemClamps(t *testing.T) {
	e := NewEditor(testSections())
	e.SelectSection(2)

	e.SelectItem(10)
	assert.Equal(t, 1, e.ItemIndex())
	e.SelectItem(-3)
	assert.Equal(t, 0, e.ItemIndex())
}
