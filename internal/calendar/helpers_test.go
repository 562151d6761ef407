package calendar

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

var testLoc = time.FixedZone("WIB", 7*3600)

func date(t string) time.Time {
	d, err := domain.ParseDateKey(t, testLoc)
	if err != nil {
		panic(err)
	}
	return d
}

func at(key string, hour int) time.Time {
	return date(key).Add(time.Duration(hour) * time.Hour)
}

func checked(id string, status domain.SlotStatus) domain.Slot {
	return domain.Slot{ID: id, Checked: true, Status: status}
}

func unit(start time.Time, status domain.UnitStatus) domain.UnitLogRecord {
	return domain.UnitLogRecord{StartTime: start, Status: status}
}

func strPtr(s string) *string { return &s }
