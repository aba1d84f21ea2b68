package dto

import "github.com/noah-isme/school-admin-api/internal/models"

// StudentResponse is a student enriched with the name of their class.
type StudentResponse struct {
	models.Student
	ClassName string `json:"class_name"`
}

// TeacherSummary is the short form of a teacher embedded in other payloads.
type TeacherSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TeacherResponse is a teacher with the names of the subjects they teach.
type TeacherResponse struct {
	models.Teacher
	SubjectNames []string `json:"subject_names"`
}

// ClassResponse is a class in list form.
type ClassResponse struct {
	models.Class
	TeacherName string `json:"teacher_name"`
}

// ClassDetailResponse describes a class with its homeroom teacher, subjects and headcount.
type ClassDetailResponse struct {
	models.Class
	HomeroomTeacher *TeacherSummary  `json:"homeroom_teacher,omitempty"`
	Subjects        []models.Subject `json:"subjects"`
	StudentCount    int              `json:"student_count"`
}
