package dto

import (
	"time"

	"github.com/google/uuid"
)

// BoothCrowdStatus is one booth's density at broadcast time
type BoothCrowdStatus struct {
	BoothID uuid.UUID `json:"boothId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Code    string    `json:"code" example:"A001"`
	Level   string    `json:"level" example:"HIGH"`
	Count   int64     `json:"count" example:"27"`
}

// CrowdStatusBroadcast is the payload of GET /crowd-status and of every topic frame
type CrowdStatusBroadcast struct {
	Booths    []BoothCrowdStatus `json:"booths"`
	Timestamp time.Time          `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
