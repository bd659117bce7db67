package model

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// swagger:model Topic
type Topic struct {
	BaseModel
	Name  string `gorm:"size:100;unique;not null" json:"name"`
	Order int    `gorm:"default:0" json:"order"`

	Problems []Problem `gorm:"foreignKey:TopicID" json:"problems,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}

// Problem is one entry of the static sheet. The slug doubles as the
// identifier referenced by attempts; no referential integrity is enforced.
// swagger:model Problem
type Problem struct {
	Slug       string     `gorm:"primaryKey;size:100" json:"id"`
	TopicID    uint       `gorm:"index" json:"topicId"`
	Title      string     `gorm:"size:200;not null" json:"title"`
	Difficulty Difficulty `gorm:"size:10" json:"difficulty"`
	Platform   string     `gorm:"size:50" json:"platform"`
	URL        string     `gorm:"size:255" json:"url"`
	Order      int        `gorm:"default:0" json:"order"`
}

func (Problem) TableName() string {
	return "problems"
}

// ProblemMark carries a user's saved/completed flags for one problem.
// swagger:model ProblemMark
type ProblemMark struct {
	BaseModel
	UserID    uint   `gorm:"index:idx_mark_user_problem,unique" json:"userId"`
	ProblemID string `gorm:"index:idx_mark_user_problem,unique;size:100" json:"problemId"`
	Saved     bool   `gorm:"default:false" json:"saved"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (ProblemMark) TableName() string {
	return "problem_marks"
}
