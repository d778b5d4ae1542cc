package usecase

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageDefaults(t *testing.T) {
	page := ParsePage(url.Values{})

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 0, page.Skip)
}

func TestParsePageClampsLimit(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{"over the cap", "page=1&limit=500", 1, 100, 0},
		{"at the cap", "page=2&limit=100", 2, 100, 100},
		{"zero limit", "limit=0", 1, 20, 0},
		{"negative limit", "limit=-5", 1, 20, 0},
		{"non-numeric limit", "limit=abc", 1, 20, 0},
		{"zero page", "page=0&limit=10", 1, 10, 0},
		{"negative page", "page=-3", 1, 20, 0},
		{"non-numeric page", "page=abc&limit=10", 1, 10, 0},
		{"skip derivation", "page=3&limit=10", 3, 10, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			page := ParsePage(q)
			assert.Equal(t, tc.wantPage, page.Page)
			assert.Equal(t, tc.wantLimit, page.Limit)
			assert.Equal(t, tc.wantSkip, page.Skip)
			assert.GreaterOrEqual(t, page.Limit, 1)
			assert.LessOrEqual(t, page.Limit, 100)
			assert.Equal(t, (page.Page-1)*page.Limit, page.Skip)
		})
	}
}

func TestCompileStringFilters(t *testing.T) {
	q, _ := url.ParseQuery("email=Jane@Example.com&city=Austin&company_contains=forge")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.Email)
	assert.Equal(t, "Jane@Example.com", filter.Email.Equals)

	require.NotNil(t, filter.City)
	assert.Equal(t, "Austin", filter.City.Equals)

	require.NotNil(t, filter.Company)
	assert.Equal(t, "forge", filter.Company.Contains)
}

func TestCompileEnumFilters(t *testing.T) {
	q, _ := url.ParseQuery("status=new&source_in=website,referral")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.Status)
	assert.Equal(t, "new", filter.Status.Equals)
	assert.Empty(t, filter.Status.In)

	require.NotNil(t, filter.Source)
	assert.Equal(t, []string{"website", "referral"}, filter.Source.In)
}

func TestCompileStatusInWinsOverBareStatus(t *testing.T) {
	q, _ := url.ParseQuery("status=new&status_in=contacted,won")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.Status)
	assert.Equal(t, []string{"contacted", "won"}, filter.Status.In)
	assert.Empty(t, filter.Status.Equals)
}

func TestCompileScoreBoundsMerge(t *testing.T) {
	q, _ := url.ParseQuery("score_gt=10&score_lt=20")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.Score)
	require.NotNil(t, filter.Score.GT)
	require.NotNil(t, filter.Score.LT)
	assert.Equal(t, 10, *filter.Score.GT)
	assert.Equal(t, 20, *filter.Score.LT)
	assert.Nil(t, filter.Score.Equals)
}

func TestCompileScoreEqualsThenBoundMerge(t *testing.T) {
	q, _ := url.ParseQuery("score=15&score_gt=10")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.Score)
	require.NotNil(t, filter.Score.Equals)
	require.NotNil(t, filter.Score.GT)
	assert.Equal(t, 15, *filter.Score.Equals)
	assert.Equal(t, 10, *filter.Score.GT)
}

func TestCompileScoreBetweenReplacesEarlierClauses(t *testing.T) {
	q, _ := url.ParseQuery("score=5&score_gt=1&score_lt=99&score_between=10,20")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.Score)
	assert.Nil(t, filter.Score.Equals)
	assert.Nil(t, filter.Score.GT)
	assert.Nil(t, filter.Score.LT)
	require.NotNil(t, filter.Score.GTE)
	require.NotNil(t, filter.Score.LTE)
	assert.Equal(t, 10, *filter.Score.GTE)
	assert.Equal(t, 20, *filter.Score.LTE)
}

func TestCompileScoreRejectsNonNumeric(t *testing.T) {
	for _, query := range []string{"score=abc", "score_gt=x", "score_lt=y", "score_between=a,b", "score_between=10"} {
		q, _ := url.ParseQuery(query)

		_, _, err := CompileLeadQuery(q)
		require.Error(t, err, query)
		assert.True(t, IsValidationError(err), query)
	}
}

func TestCompileCreatedAtOnWindow(t *testing.T) {
	q, _ := url.ParseQuery("created_at_on=2024-03-10")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.CreatedAt)
	require.NotNil(t, filter.CreatedAt.GTE)
	require.NotNil(t, filter.CreatedAt.LT)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, filter.CreatedAt.GTE.Equal(day))
	assert.True(t, filter.CreatedAt.LT.Equal(day.Add(24*time.Hour)))
}

func TestCompileCreatedAtBoundsMutateWindow(t *testing.T) {
	// _on builds the window first; _before and _after then overwrite the
	// respective bounds, last write wins.
	q, _ := url.ParseQuery("created_at_on=2024-03-10&created_at_before=2024-03-12&created_at_after=2024-03-01")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.CreatedAt)
	assert.True(t, filter.CreatedAt.GTE.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, filter.CreatedAt.LT.Equal(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)))
}

func TestCompileCreatedAtRejectsBadDate(t *testing.T) {
	q, _ := url.ParseQuery("created_at_on=not-a-date")

	_, _, err := CompileLeadQuery(q)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCompileIsQualified(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"banana", false},
		{"TRUE", false},
	}

	for _, tc := range cases {
		q := url.Values{"is_qualified": {tc.raw}}

		filter, _, err := CompileLeadQuery(q)
		require.NoError(t, err)
		require.NotNil(t, filter.IsQualified, tc.raw)
		assert.Equal(t, tc.want, *filter.IsQualified, tc.raw)
	}
}

func TestCompileAbsentIsQualifiedMeansNoFilter(t *testing.T) {
	filter, _, err := CompileLeadQuery(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, filter.IsQualified)
}

func TestCompileIgnoresUnknownKeys(t *testing.T) {
	q, _ := url.ParseQuery("nonsense=1&lead_value_gt=100&status=won")

	filter, _, err := CompileLeadQuery(q)
	require.NoError(t, err)

	require.NotNil(t, filter.Status)
	assert.Equal(t, "won", filter.Status.Equals)
	assert.Nil(t, filter.Score)
	assert.Nil(t, filter.Email)
}
