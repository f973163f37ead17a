package domain

import (
	"time"

	"github.com/google/uuid"
)

// CrowdLevel is the coarse density bucket shown to visitors
type CrowdLevel string

const (
	CrowdLow    CrowdLevel = "LOW"
	CrowdMedium CrowdLevel = "MEDIUM"
	CrowdHigh   CrowdLevel = "HIGH"
)

// CrowdThresholds maps a check-in count to a CrowdLevel. Medium must be below High.
type CrowdThresholds struct {
	Medium int
	High   int
}

// DefaultCrowdThresholds returns the stock 10/25 split
func DefaultCrowdThresholds() CrowdThresholds {
	return CrowdThresholds{Medium: 10, High: 25}
}

// LevelFor buckets a recent check-in count
func (t CrowdThresholds) LevelFor(count int64) CrowdLevel {
	switch {
	case count >= int64(t.High):
		return CrowdHigh
	case count >= int64(t.Medium):
		return CrowdMedium
	default:
		return CrowdLow
	}
}

// CrowdSnapshot is a write-only audit row produced by each broadcaster tick
type CrowdSnapshot struct {
	BaseModel
	BoothID    uuid.UUID  `gorm:"type:char(36);not null;index:idx_crowd_snapshots_booth_time" json:"boothId"`
	HeadCount  int64      `gorm:"not null" json:"headCount"`
	Level      CrowdLevel `gorm:"type:varchar(10);not null" json:"level"`
	RecordedAt time.Time  `gorm:"not null;index:idx_crowd_snapshots_booth_time" json:"recordedAt"`
}

// TableName specifies the table name for CrowdSnapshot
func (CrowdSnapshot) TableName() string {
	return "crowd_snapshots"
}
