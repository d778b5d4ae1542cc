package entity

import "time"

// LeadFilter is the compiled, immutable form of the listing query string.
// A nil clause means the field is not constrained at all.
type LeadFilter struct {
	Email       *StringMatch
	Company     *StringMatch
	City        *StringMatch
	Status      *EnumMatch
	Source      *EnumMatch
	Score       *NumberRange
	CreatedAt   *TimeRange
	IsQualified *bool
}

// StringMatch matches case-insensitively, either exactly or by substring.
// Exactly one of the two fields is set.
type StringMatch struct {
	Equals   string
	Contains string
}

// EnumMatch matches a single value or membership in a set. When In is
// non-empty it takes precedence over Equals.
type EnumMatch struct {
	Equals string
	In     []string
}

// NumberRange combines equality with open (GT/LT) and closed (GTE/LTE)
// bounds; any subset may be present.
type NumberRange struct {
	Equals *int
	GT     *int
	LT     *int
	GTE    *int
	LTE    *int
}

// TimeRange is a half-open window: GTE inclusive, LT exclusive.
type TimeRange struct {
	GTE *time.Time
	LT  *time.Time
}
