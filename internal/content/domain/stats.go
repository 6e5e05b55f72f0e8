package domain

// ContactStats counts contacts per status.
type ContactStats struct {
	Total   int
	New     int
	Read    int
	Replied int
}

func CountContacts(contacts []Contact) ContactStats {
	st := ContactStats{Total: len(contacts)}
	for _, c := range contacts {
		switch c.Status {
		case ContactNew:
			st.New++
		case ContactRead:
			st.Read++
		case ContactReplied:
			st.Replied++
		}
	}
	return st
}
