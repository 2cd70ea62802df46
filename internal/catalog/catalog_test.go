package catalog_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewell/labkit/internal/catalog"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "catalog.yaml")
	c, err := catalog.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, c.Source)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"96-well deep block", "eight-row trough", "tube rack"}, c.Names())

	block, ok := c.Get("96-well deep block")
	require.True(t, ok)
	assert.Equal(t, uuid.MustParse("1f0c7a9e-69a4-4f68-9de3-3b4a7c2b6f1d"), block.UUID)
	assert.Equal(t, 8, block.RowCount)
	assert.Equal(t, 12, block.ColumnCount)
	require.NotNil(t, block.CenterOfA1)
	assert.Equal(t, 14.38, block.CenterOfA1.X)
	assert.Equal(t, 11.24, block.CenterOfA1.Y)
	require.NotNil(t, block.PlateHeight)
	assert.Equal(t, 44.1, *block.PlateHeight)
	require.NotNil(t, block.DistanceToLiquid)
	assert.Equal(t, 3.2, *block.DistanceToLiquid)

	trough, ok := c.Get("Eight-Row Trough")
	require.True(t, ok, "lookup should ignore case")
	assert.NotEqual(t, uuid.Nil, trough.UUID, "entries without a uuid get one assigned")
	require.NotNil(t, trough.RowSpacing)
	assert.Equal(t, 9.01, *trough.RowSpacing)
	assert.Nil(t, trough.ColumnSpacing)

	rack, ok := c.Get("tube rack")
	require.True(t, ok)
	assert.Nil(t, rack.CenterOfA1)

	_, ok = c.Get("coffee mug")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join("testdata", "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read catalog")
}

func TestParse_BadYAML(t *testing.T) {
	_, err := catalog.Parse("broken.yaml", []byte("labware: ["))
	assert.ErrorContains(t, err, "failed to parse catalog broken.yaml")
}

func TestParse_DuplicateName(t *testing.T) {
	doc := `labware:
  - name: 96-well
    rows: 8
    columns: 12
  - name: 96-WELL
    rows: 8
    columns: 12
`
	_, err := catalog.Parse("dup.yaml", []byte(doc))
	assert.ErrorContains(t, err, `duplicate labware "96-WELL"`)
}

func TestParse_InvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing name",
			doc:  "labware:\n  - rows: 8\n    columns: 12\n",
			want: "name is not set",
		},
		{
			name: "zero rows",
			doc:  "labware:\n  - name: flat\n    columns: 12\n",
			want: "row count 0",
		},
		{
			name: "bad uuid",
			doc:  "labware:\n  - name: plate\n    uuid: not-a-uuid\n    rows: 8\n    columns: 12\n",
			want: `invalid uuid "not-a-uuid"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse("bad.yaml", []byte(tt.doc))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestBuiltin(t *testing.T) {
	plate, ok := catalog.Builtin("96-well")
	require.True(t, ok)
	assert.Equal(t, 8, plate.RowCount)
	assert.Equal(t, 12, plate.ColumnCount)
	require.NotNil(t, plate.CenterOfA1)
	assert.Equal(t, 14.38, plate.CenterOfA1.X)
	assert.Equal(t, 11.24, plate.CenterOfA1.Y)
	require.NotNil(t, plate.RowSpacing)
	assert.Equal(t, 9.0, *plate.RowSpacing)

	upper, ok := catalog.Builtin("96-WELL")
	require.True(t, ok)
	assert.Equal(t, plate.UUID, upper.UUID)

	_, ok = catalog.Builtin("coffee mug")
	assert.False(t, ok)
}

func TestBuiltinNames(t *testing.T) {
	names := catalog.BuiltinNames()
	assert.Equal(t, []string{"6-well", "12-well", "24-well", "96-well", "384-well", "1536-well"}, names)

	for _, name := range names {
		def, ok := catalog.Builtin(name)
		require.True(t, ok, name)
		assert.NoError(t, def.Validate())
	}
}

func TestResolve(t *testing.T) {
	doc := `labware:
  - name: 96-well
    rows: 4
    columns: 6
`
	c, err := catalog.Parse("override.yaml", []byte(doc))
	require.NoError(t, err)

	// A catalog entry shadows the builtin of the same name.
	def, err := catalog.Resolve(c, "96-well")
	require.NoError(t, err)
	assert.Equal(t, 4, def.RowCount)

	// Anything else falls through to the builtins.
	def, err = catalog.Resolve(c, "384-well")
	require.NoError(t, err)
	assert.Equal(t, 16, def.RowCount)

	def, err = catalog.Resolve(nil, "1536-well")
	require.NoError(t, err)
	assert.Equal(t, 48, def.ColumnCount)

	_, err = catalog.Resolve(nil, "coffee mug")
	assert.ErrorContains(t, err, `unknown labware "coffee mug"`)
}
