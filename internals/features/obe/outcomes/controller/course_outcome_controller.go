// file: internals/features/obe/outcomes/controller/course_outcome_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asvc "obetrack_backend/internals/features/obe/attainment/service"
	dto "obetrack_backend/internals/features/obe/outcomes/dto"
	model "obetrack_backend/internals/features/obe/outcomes/model"
	helper "obetrack_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type CourseOutcomeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseOutcomeController(db *gorm.DB) *CourseOutcomeController {
	return &CourseOutcomeController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ========================================================
   Handlers
======================================================== */

// GET /courses/:course_id/outcomes
func (ctl *CourseOutcomeController) List(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}

	var rows []model.CourseOutcomeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("course_outcome_course_id = ?", courseID).
		Order("course_outcome_co_number ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.CourseOutcomeResponse, 0, len(rows))
	for i := range rows {
		resp, err := dto.ToCourseOutcomeResponse(&rows[i])
		if err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		out = append(out, resp)
	}

	return helper.Success(c, "OK", out)
}

// POST /courses/:course_id/outcomes
func (ctl *CourseOutcomeController) Create(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "course_id tidak valid")
	}

	var req dto.CreateCourseOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.CourseOutcomeCourseID = courseID

	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ValidateMappings(); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	row := model.CourseOutcomeModel{
		CourseOutcomeCourseID:    courseID,
		CourseOutcomeCONumber:    req.CourseOutcomeCONumber,
		CourseOutcomeDescription: strings.TrimSpace(req.CourseOutcomeDescription),
		CourseOutcomeBloomLevel:  req.CourseOutcomeBloomLevel,
	}
	if err := row.SetPOMappings(req.CourseOutcomePOMappings); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		// definisi CO berubah → derived record course ini basi
		return asvc.InvalidateDerived(tx, courseID)
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.Error(c, http.StatusConflict, "co_number sudah dipakai di course ini")
		}
		return helper.FromFiberError(c, err)
	}

	resp, err := dto.ToCourseOutcomeResponse(&row)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Course outcome dibuat", resp)
}

// DELETE /outcomes/:co_id
func (ctl *CourseOutcomeController) Delete(c *fiber.Ctx) error {
	coID, err := uuid.Parse(strings.TrimSpace(c.Params("co_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "co_id tidak valid")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var row model.CourseOutcomeModel
		if err := tx.First(&row, "course_outcome_id = ?", coID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Course outcome tidak ditemukan")
			}
			return err
		}
		if err := tx.Delete(&row).Error; err != nil {
			return err
		}
		return asvc.InvalidateDerived(tx, row.CourseOutcomeCourseID)
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Course outcome dihapus", nil)
}
