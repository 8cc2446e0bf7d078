package types

// Subject filters assessment fetches by content area.
type Subject string

const (
	// SubjectAll fetches every content area.
	SubjectAll Subject = "all"
	// SubjectELA fetches English Language Arts results.
	SubjectELA Subject = "ela"
	// SubjectMath fetches mathematics results.
	SubjectMath Subject = "math"
	// SubjectScience fetches science results.
	SubjectScience Subject = "science"
	// SubjectCSLA fetches Colorado Spanish Language Arts results.
	SubjectCSLA Subject = "csla"
)

// String returns the string form of the subject.
func (s Subject) String() string { return string(s) }

// Valid reports whether s is one of the recognised subjects.
func (s Subject) Valid() bool {
	switch s {
	case SubjectAll, SubjectELA, SubjectMath, SubjectScience, SubjectCSLA:
		return true
	}
	return false
}

// Subjects lists every recognised subject, for CLI help and validation messages.
func Subjects() []Subject {
	return []Subject{SubjectAll, SubjectELA, SubjectMath, SubjectScience, SubjectCSLA}
}
