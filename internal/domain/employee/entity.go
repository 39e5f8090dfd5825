package employee

import (
	"time"

	"github.com/google/uuid"
)

// EmploymentStatus tracks whether an employee is currently working.
type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "ACTIVE"
	StatusOnLeave    EmploymentStatus = "ON_LEAVE"
	StatusTerminated EmploymentStatus = "TERMINATED"
)

func (s EmploymentStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

func ParseEmploymentStatus(s string) (EmploymentStatus, bool) {
	st := EmploymentStatus(s)
	return st, st.IsValid()
}

type WorkLocation string

const (
	LocationRemote WorkLocation = "REMOTE"
	LocationHybrid WorkLocation = "HYBRID"
	LocationOnsite WorkLocation = "ONSITE"
)

func (l WorkLocation) IsValid() bool {
	switch l {
	case LocationRemote, LocationHybrid, LocationOnsite:
		return true
	}
	return false
}

func ParseWorkLocation(s string) (WorkLocation, bool) {
	l := WorkLocation(s)
	return l, l.IsValid()
}

const DefaultFTEAllocation = 100

// Employee is an HR personnel record. Team, work location, manager and
// email are optional; ManagerID is a plain reference and is never checked
// against an existing employee.
type Employee struct {
	ID               uuid.UUID
	Name             string
	Role             string
	Department       string
	Team             *string
	EmploymentStatus EmploymentStatus
	FTEAllocation    int
	WorkLocation     *WorkLocation
	ManagerID        *uuid.UUID
	HireDate         time.Time
	Email            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
