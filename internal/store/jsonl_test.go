package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func TestExportFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.jsonl")

	n, err := Export(path, sampleBook(t))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "export", data)
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.jsonl")
	src := sampleBook(t)

	_, err := Export(path, src)
	require.NoError(t, err)

	dst := types.NewAddressBook()
	n, err := Import(path, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, snapshots(src), snapshots(dst))
}

func TestImportMergesByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.jsonl")
	lines := `{"name":"Helen","phones":["4445556666"],"birthday":"1980-05-05"}

{"name":"Zed","phones":[],"birthday":"not set"}
`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	book := sampleBook(t)
	n, err := Import(path, book)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"John", "Helen", "Zed"}, book.Names())

	helen, _ := book.Find("Helen")
	assert.Equal(t, "Helen - 4445556666, birthday - 1980-05-05", helen.String())
}

func TestImportBadLineLeavesBookUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		lines   string
		wantErr error
	}{
		{
			name:  "invalid json",
			lines: "{\"name\":\"Zed\",\"phones\":[],\"birthday\":\"not set\"}\n{oops\n",
		},
		{
			name:    "missing field",
			lines:   "{\"name\":\"Zed\",\"phones\":[]}\n",
			wantErr: ErrMissingField,
		},
		{
			name:    "bad phone",
			lines:   "{\"name\":\"Zed\",\"phones\":[],\"birthday\":\"not set\"}\n{\"name\":\"Amy\",\"phones\":[\"1\"],\"birthday\":\"not set\"}\n",
			wantErr: types.ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.jsonl")
			require.NoError(t, os.WriteFile(path, []byte(tt.lines), 0o644))

			book := sampleBook(t)
			_, err := Import(path, book)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, []string{"John", "Helen"}, book.Names())
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "nope.jsonl"), types.NewAddressBook())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
