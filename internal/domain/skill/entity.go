package skill

import (
	"time"

	"github.com/google/uuid"
)

// Status is the approval lifecycle of a taxonomy entry. New skills start
// PENDING; APPROVED and REJECTED are terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.IsValid()
}

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "BEGINNER"
	ProficiencyIntermediate ProficiencyLevel = "INTERMEDIATE"
	ProficiencyAdvanced     ProficiencyLevel = "ADVANCED"
	ProficiencyExpert       ProficiencyLevel = "EXPERT"
)

func (p ProficiencyLevel) IsValid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

func ParseProficiencyLevel(s string) (ProficiencyLevel, bool) {
	p := ProficiencyLevel(s)
	return p, p.IsValid()
}

// Source records how a proficiency claim was attested.
type Source string

const (
	SourceSelfReported    Source = "SELF_REPORTED"
	SourceManagerVerified Source = "MANAGER_VERIFIED"
	SourceAssessment      Source = "ASSESSMENT"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceSelfReported, SourceManagerVerified, SourceAssessment:
		return true
	}
	return false
}

func ParseSource(s string) (Source, bool) {
	src := Source(s)
	return src, src.IsValid()
}

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EmployeeSkill is the association between an employee and an approved
// skill, unique per (employee, skill) pair. SkillName and Category are
// denormalized from the joined skill row for response assembly.
type EmployeeSkill struct {
	ID          uuid.UUID
	EmployeeID  uuid.UUID
	SkillID     uuid.UUID
	SkillName   string
	Category    string
	Proficiency ProficiencyLevel
	Source      Source
	LastUpdated time.Time
}
