// file: internals/features/obe/grades/controller/final_grade_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "obetrack_backend/internals/features/obe/grades/dto"
	model "obetrack_backend/internals/features/obe/grades/model"
	helper "obetrack_backend/internals/helpers"
)

/* ========================================================
   FINAL GRADE (derived, read-only)
   Nilai akhir hanya ditulis oleh pipeline recompute; endpoint
   ini murni proyeksi.
======================================================== */

type FinalGradeController struct {
	DB *gorm.DB
}

func NewFinalGradeController(db *gorm.DB) *FinalGradeController {
	return &FinalGradeController{DB: db}
}

// GET /courses/:course_id/final-grades?page=&per_page=
func (ctl *FinalGradeController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}

	paging := helper.ResolvePaging(c, 25, 200)

	base := ctl.DB.WithContext(c.UserContext()).
		Model(&model.FinalGradeModel{}).
		Where("final_grade_course_id = ?", courseID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.FinalGradeModel
	if err := base.
		Order("final_grade_percentage DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.FinalGradeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToFinalGradeResponse(&rows[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"grades":     out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

// GET /courses/:course_id/final-grades/:student_id
func (ctl *FinalGradeController) GetByStudent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "student_id tidak valid")
	}

	var row model.FinalGradeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "final_grade_course_id = ? AND final_grade_student_id = ?", courseID, studentID).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Nilai akhir belum dihitung untuk siswa ini")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ToFinalGradeResponse(&row))
}
