package model

import "time"

type ProjectStatus string

const (
	ProjectSubmitted ProjectStatus = "submitted"
	ProjectReviewed  ProjectStatus = "reviewed"
)

// Project is a learner's practice submission for a course.
// swagger:model Project
type Project struct {
	UUIDBase
	UserID      uint          `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	CourseID    string        `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	CodeContent string        `gorm:"type:text" json:"codeContent"`
	Status      ProjectStatus `gorm:"type:enum('submitted','reviewed');default:'submitted'" json:"status"`
	SubmittedAt time.Time     `json:"submittedAt"`
	Grade       *int          `json:"grade"`
	Feedback    string        `gorm:"type:text" json:"feedback"`
}

func (Project) TableName() string {
	return "projects"
}
