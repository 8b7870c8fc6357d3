package anime

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduylong/anizora/internal/platform/crud"
)

func TestDescribe_RelevanceOrderingJoinsRating(t *testing.T) {
	desc := Describe()

	filter := crud.ParseFilter(url.Values{
		"order_by":  {"relevance"},
		"direction": {"desc"},
	})

	query, _, err := crud.BuildSelect(desc, filter)
	require.NoError(t, err)
	assert.Contains(t, query, "LEFT JOIN catalog.rating AS rel ON rel.anime_id = base.id")
	assert.Contains(t, query, "ORDER BY rel.average ASC")
}

func TestDescribe_FilterKeys(t *testing.T) {
	desc := Describe()

	// Unknown keys are dropped from the query instead of erroring, so a
	// stray parameter never reaches SQL.
	filter := crud.ParseFilter(url.Values{
		"year":        {"2007"},
		"description": {"probe"},
		"kodik_link":  {"probe"},
	})

	query, args, err := crud.BuildSelect(desc, filter)
	require.NoError(t, err)
	assert.Contains(t, query, "year = $1")
	assert.NotContains(t, query, "description ILIKE")
	assert.NotContains(t, query, "kodik_link ILIKE")
	assert.Equal(t, []any{2007, 100, 0}, args)
}

func TestDescribe_WritableCoversAllColumnsButID(t *testing.T) {
	desc := Describe()

	_, writable := desc.Writable["id"]
	assert.False(t, writable, "primary key must not be client-writable")

	for _, name := range []string{"name", "alternative_names", "status", "description", "studio_id", "kodik_link"} {
		_, ok := desc.Writable[name]
		assert.True(t, ok, "expected %q to be writable", name)
	}
}
