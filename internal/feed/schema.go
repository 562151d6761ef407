package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Envelope is the upstream response wrapper.
type Envelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Data    Payload `json:"data"`
}

// Payload carries both feeds. It is also the import file format.
type Payload struct {
	SlotAssignments []SlotAssignmentWire `json:"slotAssignments"`
	UnitLogs        []UnitLogWire        `json:"unitLogs"`
}

// SlotAssignmentWire is one day of the scheduling feed.
type SlotAssignmentWire struct {
	Date             string              `json:"date" validate:"required,datetime=2006-01-02"`
	ScheduledSlotIDs []string            `json:"scheduledSlotIds,omitempty"`
	Slots            []SlotWire          `json:"slots" validate:"required,dive"`
	ScheduleEntries  []ScheduleEntryWire `json:"scheduleEntries,omitempty" validate:"omitempty,dive"`
}

// SlotWire is one slot of a day.
type SlotWire struct {
	SlotID  string `json:"slotId" validate:"required"`
	Checked bool   `json:"checked"`
	Status  string `json:"status,omitempty"`
}

// ScheduleEntryWire groups slots by subject and batch.
type ScheduleEntryWire struct {
	SubjectName string   `json:"subjectName"`
	Batch       *string  `json:"batch,omitempty"`
	SlotIDs     []string `json:"slotIds"`
}

// UnitLogWire is one unit-of-work log entry. Subject, title and note are
// carried for storage only.
type UnitLogWire struct {
	StartTime string `json:"startTime" validate:"required,starttime"`
	Status    string `json:"status,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Title     string `json:"title,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ReadPayload parses an import payload. Both a bare Payload and a full
// Envelope are accepted.
func ReadPayload(r io.Reader) (*Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}

	var probe struct {
		Data *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing payload: %w", err)
	}
	if probe.Data != nil {
		data = *probe.Data
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing payload: %w", err)
	}
	return &p, nil
}

// LoadFile reads and parses a payload JSON file.
func LoadFile(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPayload(f)
}
