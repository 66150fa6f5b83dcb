// file: internals/features/obe/attainment/controller/assessment_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "obetrack_backend/internals/features/obe/attainment/dto"
	model "obetrack_backend/internals/features/obe/attainment/model"
	service "obetrack_backend/internals/features/obe/attainment/service"
	omodel "obetrack_backend/internals/features/obe/outcomes/model"
	helper "obetrack_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type AssessmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ========================================================
   Handlers
======================================================== */

// GET /courses/:course_id/assessments
func (ctl *AssessmentController) List(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}

	var rows []model.AssessmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("assessment_course_id = ?", courseID).
		Order("assessment_type ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.AssessmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToAssessmentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// POST /assessments
func (ctl *AssessmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.AssessmentModel{
		AssessmentCourseID: req.AssessmentCourseID,
		AssessmentType:     req.AssessmentType,
		AssessmentMaxMarks: req.AssessmentMaxMarks,
		AssessmentDate:     req.AssessmentDate,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.Error(c, http.StatusConflict, "Assessment "+req.AssessmentType+" sudah ada di course ini")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Assessment dibuat", dto.ToAssessmentResponse(&row))
}

// POST /assessments/:assessment_id/marks
// Terima jawaban ter-normalisasi (hasil parser eksternal) dan replace
// seluruh set response assessment ini dalam satu transaksi.
// Baris yang menunjuk kolom tak dikenal membatalkan SELURUH import.
func (ctl *AssessmentController) UploadMarks(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assessment_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assessment_id tidak valid")
	}

	var req dto.UploadMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var assessment model.AssessmentModel
		if err := tx.First(&assessment, "assessment_id = ?", assessmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Assessment tidak ditemukan")
			}
			return err
		}

		// kolom soal harus sudah ada (CSV mapping diupload duluan)
		var cols []omodel.QuestionColumnModel
		if err := tx.Where("question_column_assessment_id = ?", assessmentID).
			Find(&cols).Error; err != nil {
			return err
		}
		if len(cols) == 0 {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"CSV mapping CO belum diupload untuk assessment ini")
		}
		valid := make(map[string]bool, len(cols))
		groups := make(map[string]string, len(cols))
		for _, col := range cols {
			valid[col.QuestionColumnName] = true
			if col.QuestionColumnOptionalGroupID != nil {
				groups[col.QuestionColumnName] = *col.QuestionColumnOptionalGroupID
			}
		}

		rows := make([]model.StudentResponseModel, 0, len(req.Responses))
		selections := make([]service.SelectionRow, 0, len(req.Responses))
		for i, r := range req.Responses {
			name := strings.ToLower(strings.TrimSpace(r.ColumnName))
			if !valid[name] {
				return fiber.NewError(fiber.StatusUnprocessableEntity,
					fmt.Sprintf("Import dibatalkan: baris %d menunjuk kolom tak dikenal %q", i+1, r.ColumnName))
			}
			rows = append(rows, model.StudentResponseModel{
				StudentResponseStudentID:    r.StudentID,
				StudentResponseAssessmentID: assessmentID,
				StudentResponseColumnName:   name,
				StudentResponseMarks:        r.Marks,
				StudentResponseSelected:     r.Selected,
			})
			selections = append(selections, service.SelectionRow{
				StudentID:  r.StudentID,
				ColumnName: name,
				Selected:   r.Selected,
			})
		}

		// soal pilihan: tepat satu yang dipilih per group per siswa
		if err := service.ValidateOptionalSelections(groups, selections); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Import dibatalkan: "+err.Error())
		}

		if err := tx.Where("student_response_assessment_id = ?", assessmentID).
			Delete(&model.StudentResponseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		// input berubah → derived record course ini basi
		return service.InvalidateDerived(tx, assessment.AssessmentCourseID)
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Marks terupload", fiber.Map{
		"assessment_id": assessmentID,
		"responses":     len(req.Responses),
	})
}

// DELETE /assessments/:assessment_id
// Hapus assessment + kolom + jawaban, dan invalidasi derived course.
func (ctl *AssessmentController) Delete(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assessment_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assessment_id tidak valid")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var assessment model.AssessmentModel
		if err := tx.First(&assessment, "assessment_id = ?", assessmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Assessment tidak ditemukan")
			}
			return err
		}

		if err := tx.Where("student_response_assessment_id = ?", assessmentID).
			Delete(&model.StudentResponseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_column_assessment_id = ?", assessmentID).
			Delete(&omodel.QuestionColumnModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&assessment).Error; err != nil {
			return err
		}
		return service.InvalidateDerived(tx, assessment.AssessmentCourseID)
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Assessment dihapus", nil)
}
