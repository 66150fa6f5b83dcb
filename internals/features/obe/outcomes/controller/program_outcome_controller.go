// file: internals/features/obe/outcomes/controller/program_outcome_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "obetrack_backend/internals/features/obe/outcomes/dto"
	model "obetrack_backend/internals/features/obe/outcomes/model"
	helper "obetrack_backend/internals/helpers"
)

type ProgramOutcomeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgramOutcomeController(db *gorm.DB) *ProgramOutcomeController {
	return &ProgramOutcomeController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /program-outcomes
func (ctl *ProgramOutcomeController) List(c *fiber.Ctx) error {
	var rows []model.ProgramOutcomeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("program_outcome_po_number ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ProgramOutcomeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToProgramOutcomeResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// POST /program-outcomes
func (ctl *ProgramOutcomeController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.ProgramOutcomeModel{
		ProgramOutcomePONumber:    req.ProgramOutcomePONumber,
		ProgramOutcomeDescription: strings.TrimSpace(req.ProgramOutcomeDescription),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.Error(c, http.StatusConflict, "po_number sudah terdaftar")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Program outcome dibuat", dto.ToProgramOutcomeResponse(&row))
}
