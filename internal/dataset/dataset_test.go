package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.Error(t, Validate(nil))
	assert.Error(t, Validate(Dataset{{}}))
	assert.NoError(t, Validate(Dataset{{"Name", "URL"}}))
	assert.NoError(t, Validate(Dataset{{"Name"}, {"A"}}))
}

func TestGet(t *testing.T) {
	t.Parallel()

	row := Row{"A", "a.com"}
	assert.Equal(t, "A", Get(row, 0))
	assert.Equal(t, "a.com", Get(row, 1))
	// Short rows read as empty instead of panicking.
	assert.Equal(t, "", Get(row, 5))
	assert.Equal(t, "", Get(row, -1))
}

func TestSet_PadsShortRow(t *testing.T) {
	t.Parallel()

	row := Row{"A"}
	row = Set(row, 3, "dossier text")
	require.Len(t, row, 4)
	assert.Equal(t, Row{"A", "", "", "dossier text"}, row)
}

func TestPad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Row{"A", "", ""}, Pad(Row{"A"}, 3))
	// Already wide enough rows are unchanged.
	assert.Equal(t, Row{"A", "B"}, Pad(Row{"A", "B"}, 1))
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	ds := Dataset{{"Name", "URL"}, {"A", ""}}
	cp := Clone(ds)
	cp[1][1] = "a.com"

	assert.Equal(t, "", ds[1][1])
	assert.Equal(t, "a.com", cp[1][1])
}

func TestDataRows(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Dataset{{"Name"}}.DataRows())
	assert.Len(t, Dataset{{"Name"}, {"A"}, {"B"}}.DataRows(), 2)
}

func TestWidthAndName(t *testing.T) {
	t.Parallel()

	ds := Dataset{{"Name", "URL", "Description"}}
	assert.Equal(t, 3, ds.Width())
	assert.Equal(t, "A", Name(Row{" A "}))
	assert.Equal(t, "", Name(Row{}))
}
