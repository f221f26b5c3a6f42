package notebook

// Snapshot is an immutable summary of the notebook for export.
type Snapshot struct {
	Total      int      `json:"total"`
	Mastered   int      `json:"mastered"`
	Unmastered int      `json:"unmastered"`
	Records    []Record `json:"questions"`
}

// Snapshot captures the current notebook. The record slice is a copy.
func (nb *Notebook) Snapshot() Snapshot {
	s := Snapshot{Total: len(nb.records), Records: nb.Records()}
	for _, r := range nb.records {
		if r.Mastered {
			s.Mastered++
		}
	}
	s.Unmastered = s.Total - s.Mastered
	return s
}
