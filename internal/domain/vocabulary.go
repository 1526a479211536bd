package domain

// ProjectType describes one entry of the project type vocabulary: a type
// name plus its ordered status list. The first status is the initial
// status assigned to new (and delegated) projects of that type.
type ProjectType struct {
	Name     string
	Statuses []string
}

// Vocabulary is the injected business vocabulary: project types with their
// per-type status lists, and the two sentinel statuses the completion
// estimator recognizes. It is configuration, not code — loaded by the
// config package and passed into the functions that need it.
type Vocabulary struct {
	Types            []ProjectType
	NotStartedStatus string
	CompletedStatus  string
}

// TypeByName returns the vocabulary entry for the given type name, or nil.
func (v *Vocabulary) TypeByName(name string) *ProjectType {
	for i := range v.Types {
		if v.Types[i].Name == name {
			return &v.Types[i]
		}
	}
	return nil
}

// InitialStatus returns the first configured status for the given project
// type, or the not-started sentinel when the type is unknown or has an
// empty status list.
func (v *Vocabulary) InitialStatus(typeName string) string {
	if t := v.TypeByName(typeName); t != nil && len(t.Statuses) > 0 {
		return t.Statuses[0]
	}
	return v.NotStartedStatus
}

// ValidStatus reports whether status belongs to the status list of the
// given project type. The sentinel statuses are always accepted so a
// vocabulary edit cannot strand existing records.
func (v *Vocabulary) ValidStatus(typeName, status string) bool {
	if status == v.NotStartedStatus || status == v.CompletedStatus {
		return true
	}
	t := v.TypeByName(typeName)
	if t == nil {
		return false
	}
	for _, s := range t.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsCompleted reports whether status equals the completed sentinel.
func (v *Vocabulary) IsCompleted(status string) bool {
	return status == v.CompletedStatus
}
