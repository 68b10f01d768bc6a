package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/urlfinder-cli/internal/dataset"
)

func row(name, url string) dataset.Row {
	return dataset.Row{name, url}
}

func TestSplit_BatchBounds(t *testing.T) {
	t.Parallel()

	rows := []dataset.Row{
		row("A", ""), row("B", ""), row("C", ""),
		row("D", ""), row("E", ""),
	}

	batches := Split(rows, 2)
	require.Len(t, batches, 3)

	assert.Equal(t, 1, batches[0].Seq)
	assert.Equal(t, 0, batches[0].Start)
	assert.Equal(t, 2, batches[0].End)
	assert.Len(t, batches[0].Rows, 2)

	assert.Equal(t, 3, batches[2].Seq)
	assert.Equal(t, 4, batches[2].Start)
	assert.Equal(t, 5, batches[2].End)
	assert.Len(t, batches[2].Rows, 1)
}

func TestSplit_FiltersPlausibleURLs(t *testing.T) {
	t.Parallel()

	rows := []dataset.Row{
		row("A", ""),
		row("B", "good.com"),
		row("C", "gmail.com"),
		row("D", "user@gmail.com"),
	}

	batches := Split(rows, 10)
	require.Len(t, batches, 1)

	b := batches[0]
	require.Len(t, b.Lookups, 3)
	assert.Equal(t, 0, b.Lookups[0].Offset)
	assert.Equal(t, "A", b.Lookups[0].Row[0])
	assert.Equal(t, 2, b.Lookups[1].Offset)
	assert.Equal(t, "C", b.Lookups[1].Row[0])
	assert.Equal(t, 3, b.Lookups[2].Offset)
	assert.False(t, b.NoCall())
}

func TestSplit_NoCallBatch(t *testing.T) {
	t.Parallel()

	rows := []dataset.Row{
		row("A", "a.com"),
		row("B", "b.com"),
	}

	batches := Split(rows, 10)
	require.Len(t, batches, 1)
	assert.True(t, batches[0].NoCall())
}

func TestSplit_ShortRowTreatedAsMissingURL(t *testing.T) {
	t.Parallel()

	batches := Split([]dataset.Row{{"OnlyName"}}, 10)
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Lookups, 1)
}

func TestSplit_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Split(nil, 10))
}

func TestSplit_BatchSizeFloor(t *testing.T) {
	t.Parallel()

	rows := []dataset.Row{row("A", ""), row("B", "")}
	batches := Split(rows, 0)
	assert.Len(t, batches, 2)
}
