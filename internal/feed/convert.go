package feed

import (
	"fmt"
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// Batch is a validated payload converted to storable rows.
type Batch struct {
	Assignments []*domain.SlotAssignment
	UnitLogs    []*domain.UnitLog
	Skipped     []RecordError
}

// Feeds converts the batch into feed records dated in loc.
func (b *Batch) Feeds(loc *time.Location) *Feeds {
	f := NewFeeds(b.Assignments, b.UnitLogs, loc)
	f.Skipped = append(append([]RecordError{}, b.Skipped...), f.Skipped...)
	return f
}

// offsetlessLayouts are accepted start times without a UTC offset. They are
// read as wall-clock time in the caller's zone.
var offsetlessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// ParseStartTime parses a unit log start time. RFC 3339 values keep their
// offset; values without one are interpreted in loc.
func ParseStartTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	loc = domain.LocationOrLocal(loc)
	for _, layout := range offsetlessLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}

// Decode validates every record of p and converts the well-formed ones.
// Malformed records are skipped and reported, never fatal. Start times
// without an offset are read in loc. IDs and timestamps are left for the
// caller to assign.
func Decode(p *Payload, teacherID string, loc *time.Location) *Batch {
	b := &Batch{}
	if p == nil {
		return b
	}

	for i := range p.SlotAssignments {
		w := &p.SlotAssignments[i]
		if reason := validateRecord(w); reason != "" {
			b.Skipped = append(b.Skipped, RecordError{Kind: KindSlotAssignment, Index: i, Reason: reason})
			continue
		}
		b.Assignments = append(b.Assignments, toAssignment(w, teacherID))
	}

	for i := range p.UnitLogs {
		w := &p.UnitLogs[i]
		if reason := validateRecord(w); reason != "" {
			b.Skipped = append(b.Skipped, RecordError{Kind: KindUnitLog, Index: i, Reason: reason})
			continue
		}
		started, err := ParseStartTime(w.StartTime, loc)
		if err != nil {
			b.Skipped = append(b.Skipped, RecordError{Kind: KindUnitLog, Index: i, Reason: err.Error()})
			continue
		}
		b.UnitLogs = append(b.UnitLogs, &domain.UnitLog{
			TeacherID: teacherID,
			Subject:   w.Subject,
			Title:     w.Title,
			StartedAt: started,
			Status:    domain.UnitStatus(w.Status),
			Note:      w.Note,
		})
	}
	return b
}

func toAssignment(w *SlotAssignmentWire, teacherID string) *domain.SlotAssignment {
	a := &domain.SlotAssignment{
		TeacherID:        teacherID,
		Day:              w.Date,
		ScheduledSlotIDs: w.ScheduledSlotIDs,
	}
	for _, s := range w.Slots {
		a.Slots = append(a.Slots, domain.Slot{ID: s.SlotID, Checked: s.Checked, Status: domain.SlotStatus(s.Status)})
	}
	for _, e := range w.ScheduleEntries {
		a.ScheduleEntries = append(a.ScheduleEntries, domain.ScheduleEntry{
			SubjectName: e.SubjectName,
			Batch:       e.Batch,
			SlotIDs:     e.SlotIDs,
		})
	}
	return a
}

// Encode converts stored rows back into the wire payload.
func Encode(assignments []*domain.SlotAssignment, logs []*domain.UnitLog) *Payload {
	p := &Payload{
		SlotAssignments: make([]SlotAssignmentWire, 0, len(assignments)),
		UnitLogs:        make([]UnitLogWire, 0, len(logs)),
	}
	for _, a := range assignments {
		w := SlotAssignmentWire{Date: a.Day, ScheduledSlotIDs: a.ScheduledSlotIDs, Slots: []SlotWire{}}
		for _, s := range a.Slots {
			w.Slots = append(w.Slots, SlotWire{SlotID: s.ID, Checked: s.Checked, Status: string(s.Status)})
		}
		for _, e := range a.ScheduleEntries {
			w.ScheduleEntries = append(w.ScheduleEntries, ScheduleEntryWire{SubjectName: e.SubjectName, Batch: e.Batch, SlotIDs: e.SlotIDs})
		}
		p.SlotAssignments = append(p.SlotAssignments, w)
	}
	for _, u := range logs {
		p.UnitLogs = append(p.UnitLogs, UnitLogWire{
			StartTime: u.StartedAt.UTC().Format(time.RFC3339),
			Status:    string(u.Status),
			Subject:   u.Subject,
			Title:     u.Title,
			Note:      u.Note,
		})
	}
	return p
}
