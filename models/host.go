package models

import "time"

// WeeklyRule is a recurring working-hours rule for one weekday. Start/End are
// minutes from local midnight in the rule's timezone (e.g., 540 for 9:00 AM).
// An EndMinute less than or equal to StartMinute means the rule crosses
// midnight into the following day.
type WeeklyRule struct {
	Weekday     time.Weekday `bson:"weekday" json:"weekday"`
	StartMinute int          `bson:"startMinute" json:"startMinute"`
	EndMinute   int          `bson:"endMinute" json:"endMinute"`
	Timezone    string       `bson:"timezone,omitempty" json:"timezone,omitempty"` // falls back to the host's timezone
}

// DateOverride replaces all weekly rules for a single calendar date.
// Empty Windows means the host is fully unavailable that day.
type DateOverride struct {
	Date    string       `bson:"date" json:"date"` // "2006-01-02", in the host's timezone
	Windows []TimeWindow `bson:"windows,omitempty" json:"windows,omitempty"`
}

// Host is a calendar-bearing party who can be assigned to a booking.
type Host struct {
	ID            string         `bson:"id" json:"id"`
	TenantID      string         `bson:"tenantId" json:"tenantId"`
	Name          string         `bson:"name,omitempty" json:"name,omitempty"`
	Timezone      string         `bson:"timezone" json:"timezone"`
	WeeklyRules   []WeeklyRule   `bson:"weeklyRules,omitempty" json:"weeklyRules,omitempty"`
	DateOverrides []DateOverride `bson:"dateOverrides,omitempty" json:"dateOverrides,omitempty"`
	IsFixed       bool           `bson:"isFixed" json:"isFixed"`
	Priority      int            `bson:"priority" json:"priority"`
	Weight        float64        `bson:"weight" json:"weight"`
}

// RuleTimezone returns the timezone a rule should be expanded in.
func (h Host) RuleTimezone(r WeeklyRule) string {
	if r.Timezone != "" {
		return r.Timezone
	}
	return h.Timezone
}
