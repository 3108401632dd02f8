// file: internals/features/school/academics/dto/academics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/academics/model"
)

/* =========================
   Class
   ========================= */

type CreateClassRequest struct {
	ClassName         string     `json:"class_name" validate:"required,min=1,max=50"`
	ClassLevel        int        `json:"class_level" validate:"required,min=1,max=12"`
	ClassAcademicYear string     `json:"class_academic_year" validate:"required,min=4,max=20"`
	HomeroomTeacherID *uuid.UUID `json:"homeroom_teacher_id,omitempty" validate:"omitempty"`
}

type UpdateClassRequest struct {
	ClassName         *string    `json:"class_name,omitempty" validate:"omitempty,min=1,max=50"`
	ClassLevel        *int       `json:"class_level,omitempty" validate:"omitempty,min=1,max=12"`
	HomeroomTeacherID *uuid.UUID `json:"homeroom_teacher_id,omitempty"`
	IsActive          *bool      `json:"is_active,omitempty"`
}

type ClassResponse struct {
	ClassID           uuid.UUID  `json:"class_id"`
	ClassName         string     `json:"class_name"`
	ClassLevel        int        `json:"class_level"`
	ClassAcademicYear string     `json:"class_academic_year"`
	HomeroomTeacherID *uuid.UUID `json:"homeroom_teacher_id,omitempty"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
}

func NewClassResponse(c *m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:           c.ClassID,
		ClassName:         c.ClassName,
		ClassLevel:        c.ClassLevel,
		ClassAcademicYear: c.ClassAcademicYear,
		HomeroomTeacherID: c.ClassHomeroomTeacherID,
		IsActive:          c.ClassIsActive,
		CreatedAt:         c.ClassCreatedAt,
	}
}

/* =========================
   Subject
   ========================= */

type CreateSubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,min=1,max=100"`
	SubjectCode string `json:"subject_code" validate:"required,min=1,max=20"`
}

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name,omitempty" validate:"omitempty,min=1,max=100"`
	SubjectCode *string `json:"subject_code,omitempty" validate:"omitempty,min=1,max=20"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type SubjectResponse struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	SubjectCode string    `json:"subject_code"`
	IsActive    bool      `json:"is_active"`
}

func NewSubjectResponse(s *m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:   s.SubjectID,
		SubjectName: s.SubjectName,
		SubjectCode: s.SubjectCode,
		IsActive:    s.SubjectIsActive,
	}
}

/* =========================
   Teacher
   ========================= */

type CreateTeacherRequest struct {
	FullName  string     `json:"full_name" validate:"required,min=1,max=100"`
	NIP       string     `json:"nip" validate:"required,min=1,max=30"`
	Specialty *string    `json:"specialty,omitempty" validate:"omitempty,max=100"`
	Phone     *string    `json:"phone,omitempty" validate:"omitempty,max=25"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
}

type UpdateTeacherRequest struct {
	FullName  *string    `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	Specialty *string    `json:"specialty,omitempty" validate:"omitempty,max=100"`
	Phone     *string    `json:"phone,omitempty" validate:"omitempty,max=25"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
}

type TeacherResponse struct {
	TeacherID uuid.UUID  `json:"teacher_id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	FullName  string     `json:"full_name"`
	NIP       string     `json:"nip"`
	Specialty *string    `json:"specialty,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	IsActive  bool       `json:"is_active"`
}

func NewTeacherResponse(t *m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID: t.TeacherID,
		UserID:    t.TeacherUserID,
		FullName:  t.TeacherFullName,
		NIP:       t.TeacherNIP,
		Specialty: t.TeacherSpecialty,
		Phone:     t.TeacherPhone,
		IsActive:  t.TeacherIsActive,
	}
}

/* =========================
   Student / admissions
   ========================= */

// AdmitStudentRequest dikirim multipart (foto opsional di field "photo").
type AdmitStudentRequest struct {
	FullName     string     `json:"full_name" form:"full_name" validate:"required,min=1,max=100"`
	NIS          string     `json:"nis" form:"nis" validate:"required,min=1,max=30"`
	ClassID      *uuid.UUID `json:"class_id,omitempty" form:"class_id"`
	AcademicYear string     `json:"academic_year" form:"academic_year" validate:"required,min=4,max=20"`
	UserID       *uuid.UUID `json:"user_id,omitempty" form:"user_id"`
}

type UpdateStudentRequest struct {
	FullName *string    `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	ClassID  *uuid.UUID `json:"class_id,omitempty"`
	UserID   *uuid.UUID `json:"user_id,omitempty"`
}

type StudentResponse struct {
	StudentID    uuid.UUID  `json:"student_id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	FullName     string     `json:"full_name"`
	NIS          string     `json:"nis"`
	ClassID      *uuid.UUID `json:"class_id,omitempty"`
	AcademicYear string     `json:"academic_year"`
	Status       string     `json:"status"`
	HasPhoto     bool       `json:"has_photo"`
}

func NewStudentResponse(s *m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:    s.StudentID,
		UserID:       s.StudentUserID,
		FullName:     s.StudentFullName,
		NIS:          s.StudentNIS,
		ClassID:      s.StudentClassID,
		AcademicYear: s.StudentAcademicYear,
		Status:       s.StudentStatus,
		HasPhoto:     len(s.StudentPhotoWebP) > 0,
	}
}

/* =========================
   Promotion
   ========================= */

type PromoteClassRequest struct {
	ClassID          uuid.UUID `json:"class_id" validate:"required"`
	NextAcademicYear string    `json:"next_academic_year" validate:"required,min=4,max=20"`
}

type PromoteClassResponse struct {
	FromClassID   uuid.UUID  `json:"from_class_id"`
	ToClassID     *uuid.UUID `json:"to_class_id,omitempty"`
	Graduated     bool       `json:"graduated"`
	StudentsMoved int64      `json:"students_moved"`
}
