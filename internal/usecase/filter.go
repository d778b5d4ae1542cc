package usecase

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/erino/leadcrm/internal/entity"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// Page is the pagination cursor derived from the query string.
type Page struct {
	Page  int
	Limit int
	Skip  int
}

// ParsePage applies the defaults and the upper clamp. Values that do not
// parse, or parse below 1, fall back to the defaults, so Limit always ends
// up in [1, maxLimit].
func ParsePage(q url.Values) Page {
	page := intOr(q.Get("page"), defaultPage)
	if page < 1 {
		page = defaultPage
	}

	limit := intOr(q.Get("limit"), defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Page{Page: page, Limit: limit, Skip: (page - 1) * limit}
}

func intOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// filterRule binds one query key to the mutation it performs on the filter
// under construction.
type filterRule struct {
	key   string
	apply func(f *entity.LeadFilter, raw string) error
}

// leadFilterRules is evaluated top to bottom for every request. Order
// matters: when two rules touch the same field, the later rule merges onto
// or replaces the earlier clause exactly as documented per rule. This makes
// "last rule for a field wins" explicit instead of incidental.
var leadFilterRules = []filterRule{
	{"email", func(f *entity.LeadFilter, raw string) error {
		f.Email = &entity.StringMatch{Equals: raw}
		return nil
	}},
	{"company_contains", func(f *entity.LeadFilter, raw string) error {
		f.Company = &entity.StringMatch{Contains: raw}
		return nil
	}},
	{"city", func(f *entity.LeadFilter, raw string) error {
		f.City = &entity.StringMatch{Equals: raw}
		return nil
	}},
	{"status", func(f *entity.LeadFilter, raw string) error {
		f.Status = &entity.EnumMatch{Equals: raw}
		return nil
	}},
	// status_in replaces any bare status clause outright.
	{"status_in", func(f *entity.LeadFilter, raw string) error {
		f.Status = &entity.EnumMatch{In: strings.Split(raw, ",")}
		return nil
	}},
	{"source", func(f *entity.LeadFilter, raw string) error {
		f.Source = &entity.EnumMatch{Equals: raw}
		return nil
	}},
	{"source_in", func(f *entity.LeadFilter, raw string) error {
		f.Source = &entity.EnumMatch{In: strings.Split(raw, ",")}
		return nil
	}},
	{"score", func(f *entity.LeadFilter, raw string) error {
		n, err := parseScore("score", raw)
		if err != nil {
			return err
		}
		f.Score = &entity.NumberRange{Equals: &n}
		return nil
	}},
	// score_gt and score_lt merge additively onto whatever score clause
	// already exists.
	{"score_gt", func(f *entity.LeadFilter, raw string) error {
		n, err := parseScore("score_gt", raw)
		if err != nil {
			return err
		}
		if f.Score == nil {
			f.Score = &entity.NumberRange{}
		}
		f.Score.GT = &n
		return nil
	}},
	{"score_lt", func(f *entity.LeadFilter, raw string) error {
		n, err := parseScore("score_lt", raw)
		if err != nil {
			return err
		}
		if f.Score == nil {
			f.Score = &entity.NumberRange{}
		}
		f.Score.LT = &n
		return nil
	}},
	// score_between replaces the whole score clause with an inclusive range.
	{"score_between", func(f *entity.LeadFilter, raw string) error {
		parts := strings.SplitN(raw, ",", 2)
		if len(parts) != 2 {
			return ValidationError{"score_between", "must be min,max"}
		}
		min, err := parseScore("score_between", parts[0])
		if err != nil {
			return err
		}
		max, err := parseScore("score_between", parts[1])
		if err != nil {
			return err
		}
		f.Score = &entity.NumberRange{GTE: &min, LTE: &max}
		return nil
	}},
	// created_at_on opens a one-day half-open window; _before and _after
	// then mutate the same bounds, last write wins, without consistency
	// checks.
	{"created_at_on", func(f *entity.LeadFilter, raw string) error {
		day, err := parseDate("created_at_on", raw)
		if err != nil {
			return err
		}
		next := day.Add(24 * time.Hour)
		f.CreatedAt = &entity.TimeRange{GTE: &day, LT: &next}
		return nil
	}},
	{"created_at_before", func(f *entity.LeadFilter, raw string) error {
		t, err := parseDate("created_at_before", raw)
		if err != nil {
			return err
		}
		if f.CreatedAt == nil {
			f.CreatedAt = &entity.TimeRange{}
		}
		f.CreatedAt.LT = &t
		return nil
	}},
	{"created_at_after", func(f *entity.LeadFilter, raw string) error {
		t, err := parseDate("created_at_after", raw)
		if err != nil {
			return err
		}
		if f.CreatedAt == nil {
			f.CreatedAt = &entity.TimeRange{}
		}
		f.CreatedAt.GTE = &t
		return nil
	}},
	{"is_qualified", func(f *entity.LeadFilter, raw string) error {
		qualified := raw == "true"
		f.IsQualified = &qualified
		return nil
	}},
}

// CompileLeadQuery turns the raw listing query into a filter predicate and
// a pagination cursor. Keys outside the rule table are ignored.
func CompileLeadQuery(q url.Values) (entity.LeadFilter, Page, error) {
	var filter entity.LeadFilter

	for _, rule := range leadFilterRules {
		raw := q.Get(rule.key)
		if raw == "" {
			continue
		}
		if err := rule.apply(&filter, raw); err != nil {
			return entity.LeadFilter{}, Page{}, err
		}
	}

	return filter, ParsePage(q), nil
}

func parseScore(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ValidationError{field, "must be a number"}
	}
	return n, nil
}

func parseDate(field, raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ValidationError{field, "must be a valid date (YYYY-MM-DD or RFC3339)"}
}
