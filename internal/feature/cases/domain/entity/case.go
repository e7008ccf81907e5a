// Package entity defines the case records of the cases feature.
package entity

import (
	"strconv"
	"time"
)

// Case is a stored court case keyed by its CNR.
// Optional descriptive fields default to the empty string.
type Case struct {
	ID  uint   `gorm:"primaryKey"`
	CNR string `gorm:"column:cnr;uniqueIndex;size:50;not null"`

	CaseType           string `gorm:"size:100;not null;default:''"`
	CaseNumber         string `gorm:"size:100;not null;default:''"`
	CaseYear           string `gorm:"size:10;not null;default:''"`
	CaseTitle          string `gorm:"size:500;not null;default:''"`
	CourtName          string `gorm:"size:200;not null;default:''"`
	JudgeName          string `gorm:"size:200;not null;default:''"`
	FilingNumber       string `gorm:"size:100;not null;default:''"`
	FilingDate         string `gorm:"size:50;not null;default:''"`
	RegistrationNumber string `gorm:"size:100;not null;default:''"`
	Petitioner         string `gorm:"size:500;not null;default:''"`
	Respondent         string `gorm:"size:1000;not null;default:''"`
	Status             string `gorm:"size:200;not null;default:''"`
	SubStage           string `gorm:"size:200;not null;default:''"`
	UnderAct           string `gorm:"size:200;not null;default:''"`
	UnderSection       string `gorm:"size:100;not null;default:''"`
	Note               string `gorm:"type:text"`
	Source             string `gorm:"size:200;not null;default:''"`

	// NextHearingDate is a calendar date at midnight UTC. Nil when not scheduled.
	NextHearingDate *time.Time `gorm:"type:date;index"`

	CreatedAt time.Time
	// UpdatedAt is set by the reconciler, which guarantees it strictly advances.
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;index"`
}

// TableName pins the table name for every dialect.
func (Case) TableName() string {
	return "cases"
}

// HearingIsOn reports whether the next hearing falls on the calendar day of day.
func (c *Case) HearingIsOn(day time.Time) bool {
	if c.NextHearingDate == nil {
		return false
	}
	y1, m1, d1 := c.NextHearingDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DisplayNumber returns "<type> <number>/<year>" as printed on a cause list.
// Missing parts fall back to "CC", the record ID and fallbackYear.
func (c *Case) DisplayNumber(fallbackYear int) string {
	caseType := c.CaseType
	if caseType == "" {
		caseType = "CC"
	}
	number := c.CaseNumber
	if number == "" {
		number = strconv.FormatUint(uint64(c.ID), 10)
	}
	year := c.CaseYear
	if year == "" {
		year = strconv.Itoa(fallbackYear)
	}
	return caseType + " " + number + "/" + year
}
