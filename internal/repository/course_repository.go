package repository

import (
	"errors"

	"twigane_backend/internal/model"
	"twigane_backend/internal/util"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) FindPublished() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("published = ?", true).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

// FindWithLessons loads a course and its lessons ordered by position.
func (r *CourseRepository) FindWithLessons(courseID string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Lessons", func(db *gorm.DB) *gorm.DB {
		return db.Order("lessons.position ASC")
	}).First(&course, "id = ?", courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(courseID string) error {
	return r.DB.Delete(&model.Course{}, "id = ?", courseID).Error
}

func (r *CourseRepository) FindLesson(lessonID string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, "id = ?", lessonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *CourseRepository) CreateLesson(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *CourseRepository) UpdateLesson(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *CourseRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

// CountProgressForCourse reports how many progress rows reference any lesson
// of the course. Used to refuse restructuring a course learners have started.
func (r *CourseRepository) CountProgressForCourse(courseID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lessons.course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
