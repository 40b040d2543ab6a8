package domain

import (
	"fmt"
	"time"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityUrgent  Severity = "urgent"
)

type Reminder struct {
	Subject  string   `json:"subject"`
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail"`
}

const (
	lowHealthCutoff    = 20
	documentNoticeDays = 30
)

// DeriveReminders builds the prioritized reminder list for one vehicle from
// its current metrics. The rules run in a fixed order and each gates
// independently; documents inside the notice window collapse into a single
// aggregated item carrying the soonest expiry. The list is a pure view over
// the inputs — nothing is persisted, so re-deriving it is always safe.
func DeriveReminders(oilHealth, brakeHealth int, docs []*Document, now time.Time) []*Reminder {
	var reminders []*Reminder

	if oilHealth <= lowHealthCutoff {
		reminders = append(reminders, consumableReminder("Engine oil change", oilHealth))
	}
	if brakeHealth <= lowHealthCutoff {
		reminders = append(reminders, consumableReminder("Brake pad check", brakeHealth))
	}

	if r := documentReminder(docs, now); r != nil {
		reminders = append(reminders, r)
	}

	return reminders
}

func consumableReminder(subject string, health int) *Reminder {
	if health == 0 {
		return &Reminder{Subject: subject, Severity: SeverityUrgent, Detail: "overdue"}
	}
	return &Reminder{
		Subject:  subject,
		Severity: SeverityWarning,
		Detail:   fmt.Sprintf("%d%% remaining", health),
	}
}

// documentReminder aggregates all documents expiring within the notice window
// into one item showing the minimum remaining days, or nil when none qualify.
func documentReminder(docs []*Document, now time.Time) *Reminder {
	minDays := 0
	found := false
	for _, doc := range docs {
		days := doc.DaysLeft(now)
		if days >= documentNoticeDays {
			continue
		}
		if !found || days < minDays {
			minDays = days
		}
		found = true
	}
	if !found {
		return nil
	}

	if minDays < 0 {
		return &Reminder{
			Subject:  "Document renewal",
			Severity: SeverityUrgent,
			Detail:   "a document has expired",
		}
	}
	return &Reminder{
		Subject:  "Document renewal",
		Severity: SeverityWarning,
		Detail:   fmt.Sprintf("%d days until soonest expiry", minDays),
	}
}
