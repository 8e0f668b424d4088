package draft

// Fixed store keys. No two features may share a key.
const (
	JournalFreeWriteKey = "journal-freewrite"
	ExperienceModeKey   = "experience-mode"
)
