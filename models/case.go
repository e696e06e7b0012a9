package models

import "time"

// CaseField identifies one of the closed set of checklist flags on a
// surgery case that can be toggled independently of a full update.
type CaseField string

const (
	// FieldConsentSigned marks that the owner's consent form is on file.
	FieldConsentSigned CaseField = "consent_signed"

	// FieldFastingVerified marks that pre-surgical fasting was confirmed.
	FieldFastingVerified CaseField = "fasting_verified"

	// FieldPreOpExamDone marks the pre-operative exam as completed.
	FieldPreOpExamDone CaseField = "preop_exam_done"

	// FieldPostOpCheckDone marks the post-operative check as completed.
	FieldPostOpCheckDone CaseField = "postop_check_done"
)

// KnownCaseFields lists every toggleable checklist flag. Used for
// validation before an operation is issued or enqueued.
var KnownCaseFields = []CaseField{
	FieldConsentSigned,
	FieldFastingVerified,
	FieldPreOpExamDone,
	FieldPostOpCheckDone,
}

// Valid reports whether f is one of the known checklist flags.
func (f CaseField) Valid() bool {
	for _, known := range KnownCaseFields {
		if f == known {
			return true
		}
	}
	return false
}

// SurgeryCase is a single surgical case record. The remote service owns
// the record and assigns ID on creation; optimistically created local
// copies carry a negative temporary ID until their create operation has
// been replayed successfully.
type SurgeryCase struct {
	// ID is the authoritative record identifier. Negative values are
	// temporary client-side identifiers that must never be sent to the
	// server as real ids.
	ID int64 `json:"id"`

	// PatientName is the animal's name.
	PatientName string `json:"patient_name"`

	// Species and Breed describe the patient (e.g. "canine" / "beagle").
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`

	// Sex is recorded as entered ("m", "f", "mn", "fs", ...).
	Sex string `json:"sex,omitempty"`

	// DateOfBirth is optional; age is derived client-side.
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`

	// OwnerName is the client the patient belongs to.
	OwnerName string `json:"owner_name,omitempty"`

	// Procedure is the planned surgical procedure.
	Procedure string `json:"procedure"`

	// ScheduledFor is the planned surgery date.
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`

	// Notes holds free-text clinical notes.
	Notes string `json:"notes,omitempty"`

	// Checklist completion flags. The set of flags is closed; see
	// KnownCaseFields.
	ConsentSigned   bool `json:"consent_signed"`
	FastingVerified bool `json:"fasting_verified"`
	PreOpExamDone   bool `json:"preop_exam_done"`
	PostOpCheckDone bool `json:"postop_check_done"`

	// Todos is the case's to-do list. Negative item ids are temporary
	// client-side identifiers, same convention as ID.
	Todos []TodoItem `json:"todos,omitempty"`

	// UpdatedAt is set by the server on every write.
	UpdatedAt time.Time `json:"updated_at"`
}

// Toggle flips the named checklist flag in place. Unknown fields are
// ignored; callers validate with CaseField.Valid first.
func (c *SurgeryCase) Toggle(field CaseField) {
	switch field {
	case FieldConsentSigned:
		c.ConsentSigned = !c.ConsentSigned
	case FieldFastingVerified:
		c.FastingVerified = !c.FastingVerified
	case FieldPreOpExamDone:
		c.PreOpExamDone = !c.PreOpExamDone
	case FieldPostOpCheckDone:
		c.PostOpCheckDone = !c.PostOpCheckDone
	}
}

// TodoItem is one entry of a case's to-do list.
type TodoItem struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
