// file: internals/features/obe/grades/controller/semester_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "obetrack_backend/internals/features/obe/grades/dto"
	service "obetrack_backend/internals/features/obe/grades/service"
	helper "obetrack_backend/internals/helpers"
)

/* ========================================================
   SEMESTER / SGPA
======================================================== */

type SemesterController struct {
	Service   *service.SemesterService
	Validator *validator.Validate
}

func NewSemesterController(svc *service.SemesterService) *SemesterController {
	return &SemesterController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// overflow = konflik dengan state bucket saat ini, bukan payload rusak
func (ctl *SemesterController) mapSemesterErr(c *fiber.Ctx, err error) error {
	var overflow *service.CreditOverflowError
	if errors.As(err, &overflow) {
		return helper.Error(c, http.StatusConflict, overflow.Error())
	}
	return helper.FromFiberError(c, err)
}

// POST /semesters/subjects
func (ctl *SemesterController) AddSubject(c *fiber.Ctx) error {
	var req dto.AddSemesterSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	key := service.SemesterKey{
		StudentID:    req.StudentID,
		Semester:     req.Semester,
		AcademicYear: strings.TrimSpace(req.AcademicYear),
	}
	row, err := ctl.Service.AddSubject(c.UserContext(), key, service.AddSubjectInput{
		Code:    req.SubjectCode,
		Name:    req.SubjectName,
		Credits: req.Credits,
	})
	if err != nil {
		return ctl.mapSemesterErr(c, err)
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Mata kuliah ditambahkan", dto.ToSemesterSubjectResponse(row))
}

// PUT /semesters/subjects/:subject_id/credits
func (ctl *SemesterController) UpdateSubjectCredits(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("subject_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "subject_id tidak valid")
	}

	var req dto.UpdateSubjectCreditsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Service.UpdateSubjectCredits(c.UserContext(), subjectID, req.Credits)
	if err != nil {
		return ctl.mapSemesterErr(c, err)
	}

	return helper.Success(c, "Sks diperbarui", dto.ToSemesterSubjectResponse(row))
}

// DELETE /semesters/subjects/:subject_id
func (ctl *SemesterController) DeleteSubject(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("subject_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "subject_id tidak valid")
	}

	if err := ctl.Service.DeleteSubject(c.UserContext(), subjectID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Mata kuliah dihapus", nil)
}

// PUT /semesters/subjects/:subject_id/grade
func (ctl *SemesterController) SetGrade(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("subject_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "subject_id tidak valid")
	}

	var req dto.SetGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Service.SetGrade(c.UserContext(), subjectID, req.LetterGrade)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Nilai terpasang", dto.ToSemesterSubjectResponse(row))
}

// GET /students/:student_id/semesters/:semester/summary?academic_year=2025-2026
// Metadata SGPA selalu diturunkan ulang dari baris saat ini, tidak
// pernah disimpan (tidak ada cache yang bisa basi).
func (ctl *SemesterController) Summary(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "student_id tidak valid")
	}
	semester, err := strconv.Atoi(strings.TrimSpace(c.Params("semester")))
	if err != nil || semester < 1 {
		return helper.Error(c, http.StatusBadRequest, "semester tidak valid")
	}
	academicYear := strings.TrimSpace(c.Query("academic_year"))
	if academicYear == "" {
		return helper.Error(c, http.StatusBadRequest, "academic_year wajib diisi")
	}

	rows, meta, err := ctl.Service.Summary(c.UserContext(), service.SemesterKey{
		StudentID:    studentID,
		Semester:     semester,
		AcademicYear: academicYear,
	})
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := dto.SemesterSummaryResponse{
		Metadata: meta,
		Subjects: make([]dto.SemesterSubjectResponse, 0, len(rows)),
	}
	for i := range rows {
		resp.Subjects = append(resp.Subjects, dto.ToSemesterSubjectResponse(&rows[i]))
	}

	return helper.Success(c, fmt.Sprintf("Semester %d %s", semester, academicYear), resp)
}
