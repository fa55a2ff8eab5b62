package entity

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// gestationDays is the conventional 40-week pregnancy length.
const gestationDays = 280

// DueDate returns the estimated due date (LMP + 280 days) formatted as
// YYYY-MM-DD. Returns an empty string when lmp is empty or malformed.
func DueDate(lmp string) string {
	t, err := time.Parse(dateLayout, lmp)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, gestationDays).Format(dateLayout)
}

// PregnancyStage derives the gestational age at now from the LMP date,
// formatted as "N weeks" or "N weeks M days". It is recomputed on every
// read and never trusted from storage.
func PregnancyStage(lmp string, now time.Time) string {
	if lmp == "" {
		return "0 weeks"
	}
	t, err := time.Parse(dateLayout, lmp)
	if err != nil {
		return "0 weeks"
	}
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		days = 0
	}
	weeks := days / 7
	rem := days % 7
	if rem > 0 {
		return fmt.Sprintf("%d weeks %d days", weeks, rem)
	}
	return fmt.Sprintf("%d weeks", weeks)
}
