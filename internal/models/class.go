package models

import "time"

// Class represents a homeroom group of students.
type Class struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Grade     int    `json:"grade"`
	Section   string `json:"section"`
	TeacherID string `json:"teacher_id"`
	Room      string `json:"room"`
	Capacity  int    `json:"capacity"`
}

// Subject is a course taught to a class by a teacher.
type Subject struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	ClassID   string `json:"class_id"`
	TeacherID string `json:"teacher_id"`
}

// ClassNote is a note a teacher shares with a class.
type ClassNote struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	SubjectID string    `json:"subject_id"`
	TeacherID string    `json:"teacher_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
