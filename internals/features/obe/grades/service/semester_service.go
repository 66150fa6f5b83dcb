// file: internals/features/obe/grades/service/semester_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"obetrack_backend/internals/features/obe/grades/model"
	"obetrack_backend/internals/features/obe/policy"
)

/* ========================================================
   SEMESTER SERVICE (DB)
   Mutasi mata kuliah semester + penegakan batas 20 sks
   DI DALAM transaksi tulis, bukan hanya saat baca.
======================================================== */

type SemesterService struct {
	DB     *gorm.DB
	Policy policy.GradingPolicy
}

func NewSemesterService(db *gorm.DB, pol policy.GradingPolicy) *SemesterService {
	return &SemesterService{DB: db, Policy: pol}
}

// SemesterKey identitas satu bucket semester.
type SemesterKey struct {
	StudentID    uuid.UUID
	Semester     int
	AcademicYear string
}

// AddSubjectInput payload tambah mata kuliah (sudah divalidasi controller).
type AddSubjectInput struct {
	Code    string
	Name    string
	Credits int
}

// lockSubjects mengambil seluruh baris bucket dengan FOR UPDATE supaya
// dua mutasi paralel tidak sama-sama lolos cek batas sks.
func (s *SemesterService) lockSubjects(tx *gorm.DB, key SemesterKey) ([]model.SemesterSubjectModel, error) {
	var rows []model.SemesterSubjectModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("semester_subject_student_id = ? AND semester_subject_semester = ? AND semester_subject_academic_year = ?",
			key.StudentID, key.Semester, key.AcademicYear).
		Order("semester_subject_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func sumCredits(rows []model.SemesterSubjectModel) int {
	total := 0
	for _, r := range rows {
		total += r.SemesterSubjectCredits
	}
	return total
}

// AddSubject menambah mata kuliah; CreditOverflow ditolak sinkron,
// tidak pernah di-clamp.
func (s *SemesterService) AddSubject(ctx context.Context, key SemesterKey, in AddSubjectInput) (*model.SemesterSubjectModel, error) {
	if !s.Policy.CreditAllowed(in.Credits) {
		// di luar katalog sks umum institusi; tetap diterima selama
		// tidak menembus batas semester
		log.Printf("[SEMESTER] sks %d di luar katalog %v (subject=%s)", in.Credits, s.Policy.AllowedCredits, in.Code)
	}

	row := &model.SemesterSubjectModel{
		SemesterSubjectStudentID:    key.StudentID,
		SemesterSubjectSemester:     key.Semester,
		SemesterSubjectAcademicYear: key.AcademicYear,
		SemesterSubjectCode:         strings.TrimSpace(in.Code),
		SemesterSubjectName:         strings.TrimSpace(in.Name),
		SemesterSubjectCredits:      in.Credits,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.lockSubjects(tx, key)
		if err != nil {
			return err
		}
		if err := CheckCreditAdd(s.Policy, sumCredits(rows), in.Credits); err != nil {
			return err
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateSubjectCredits mengganti sks satu mata kuliah (cek delta).
func (s *SemesterService) UpdateSubjectCredits(ctx context.Context, subjectID uuid.UUID, credits int) (*model.SemesterSubjectModel, error) {
	var row model.SemesterSubjectModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "semester_subject_id = ?", subjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
			}
			return err
		}

		key := SemesterKey{
			StudentID:    row.SemesterSubjectStudentID,
			Semester:     row.SemesterSubjectSemester,
			AcademicYear: row.SemesterSubjectAcademicYear,
		}
		rows, err := s.lockSubjects(tx, key)
		if err != nil {
			return err
		}
		delta := credits - row.SemesterSubjectCredits
		if err := CheckCreditAdd(s.Policy, sumCredits(rows), delta); err != nil {
			return err
		}

		row.SemesterSubjectCredits = credits
		return tx.Model(&row).
			Update("semester_subject_credits", credits).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteSubject menghapus satu mata kuliah dari bucket.
func (s *SemesterService) DeleteSubject(ctx context.Context, subjectID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Delete(&model.SemesterSubjectModel{}, "semester_subject_id = ?", subjectID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
	}
	return nil
}

// SetGrade memasang nilai huruf (grade point diambil dari tabel band policy).
func (s *SemesterService) SetGrade(ctx context.Context, subjectID uuid.UUID, letter string) (*model.SemesterSubjectModel, error) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	points, ok := s.Policy.PointsForLetter(letter)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Huruf nilai tidak dikenal: "+letter)
	}

	var row model.SemesterSubjectModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "semester_subject_id = ?", subjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Mata kuliah tidak ditemukan")
			}
			return err
		}
		row.SemesterSubjectLetterGrade = &letter
		row.SemesterSubjectGradePoint = &points
		return tx.Model(&row).Updates(map[string]interface{}{
			"semester_subject_letter_grade": letter,
			"semester_subject_grade_point":  points,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Summary mengembalikan baris bucket + metadata hasil derive ulang.
func (s *SemesterService) Summary(ctx context.Context, key SemesterKey) ([]model.SemesterSubjectModel, SemesterMetadata, error) {
	var rows []model.SemesterSubjectModel
	err := s.DB.WithContext(ctx).
		Where("semester_subject_student_id = ? AND semester_subject_semester = ? AND semester_subject_academic_year = ?",
			key.StudentID, key.Semester, key.AcademicYear).
		Order("semester_subject_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, SemesterMetadata{}, err
	}

	subjects := make([]SubjectRow, 0, len(rows))
	for _, r := range rows {
		subjects = append(subjects, SubjectRow{
			Code:       r.SemesterSubjectCode,
			Name:       r.SemesterSubjectName,
			Credits:    r.SemesterSubjectCredits,
			GradePoint: r.SemesterSubjectGradePoint,
		})
	}

	return rows, DeriveSemester(s.Policy, subjects), nil
}
