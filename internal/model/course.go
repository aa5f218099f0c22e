package model

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// swagger:model Course
type Course struct {
	UUIDBase
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"size:100" json:"category"`
	Difficulty  Difficulty `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	Thumbnail   string     `gorm:"size:255" json:"thumbnail"`
	Published   bool       `gorm:"default:false" json:"published"`
	// Lessons are ordered by Position; the order is fixed at authoring time.
	Lessons []Lesson `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	CourseID        string `gorm:"index:idx_course_position,unique;type:varchar(36);not null" json:"courseId"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Content         string `gorm:"type:text" json:"content"`
	Position        int    `gorm:"index:idx_course_position,unique;not null" json:"position"`
	DurationMinutes int    `gorm:"default:0" json:"durationMinutes"`

	// Optional single-question quiz. Options is a JSON array of strings.
	QuizQuestion string `gorm:"type:text" json:"quizQuestion,omitempty"`
	QuizOptions  string `gorm:"type:text" json:"quizOptions,omitempty"`
	QuizCorrect  int    `gorm:"default:0" json:"-"`

	CodeTemplate   string `gorm:"type:text" json:"codeTemplate,omitempty"`
	ExpectedOutput string `gorm:"type:text" json:"expectedOutput,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

func (l *Lesson) HasQuiz() bool {
	return l.QuizQuestion != ""
}
