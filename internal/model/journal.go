package model

type JournalKind string

const (
	NoteEntry       JournalKind = "note"
	ExperimentEntry JournalKind = "experiment"
	HackathonEntry  JournalKind = "hackathon"
	JobEntry        JournalKind = "job"
)

func (k JournalKind) Valid() bool {
	switch k {
	case NoteEntry, ExperimentEntry, HackathonEntry, JobEntry:
		return true
	}
	return false
}

// JournalStatuses lists the statuses meaningful per entry kind. Other kinds
// carry no status.
var JournalStatuses = map[JournalKind][]string{
	JobEntry:       {"applied", "interviewing", "offer", "rejected"},
	HackathonEntry: {"upcoming", "done"},
}

func ValidJournalStatus(kind JournalKind, status string) bool {
	if status == "" {
		return true
	}
	for _, s := range JournalStatuses[kind] {
		if s == status {
			return true
		}
	}
	return false
}

// swagger:model JournalEntry
type JournalEntry struct {
	UUIDBase

	OwnerID uint        `gorm:"index;type:bigint unsigned" json:"ownerId"`
	Kind    JournalKind `gorm:"size:20;index" json:"kind"`
	Title   string      `gorm:"size:200;not null" json:"title"`
	Content string      `gorm:"type:text" json:"content"`
	Tags    string      `gorm:"size:255" json:"tags"`
	Status  string      `gorm:"size:20" json:"status,omitempty"`
	LinkURL string      `gorm:"size:255" json:"linkUrl,omitempty"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
