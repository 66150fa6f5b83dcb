// file: internals/features/obe/outcomes/controller/mapping_csv_controller.go
package controller

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "obetrack_backend/internals/features/obe/outcomes/service"
	helper "obetrack_backend/internals/helpers"
)

type MappingCSVController struct {
	Service *service.MappingCSVService
}

func NewMappingCSVController(db *gorm.DB) *MappingCSVController {
	return &MappingCSVController{Service: service.NewMappingCSVService(db)}
}

// GET /assessments/:assessment_id/co-mapping/template
// Download template CSV; upload ulang tanpa diubah harus round-trip.
func (ctl *MappingCSVController) Template(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assessment_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assessment_id tidak valid")
	}

	csvBytes, err := ctl.Service.Template(c.UserContext(), assessmentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="co_mapping_template.csv"`)
	return c.Send(csvBytes)
}

// POST /assessments/:assessment_id/co-mapping
// Terima multipart field `file` atau raw body text/csv.
func (ctl *MappingCSVController) Upload(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assessment_id")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assessment_id tidak valid")
	}

	var body []byte
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "File tidak bisa dibuka")
		}
		defer f.Close()
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(f); err != nil {
			return helper.Error(c, http.StatusBadRequest, "File tidak bisa dibaca")
		}
		body = buf.Bytes()
	} else {
		body = c.Body()
	}
	if len(body) == 0 {
		return helper.Error(c, http.StatusBadRequest, "CSV kosong")
	}

	count, err := ctl.Service.Import(c.UserContext(), assessmentID, bytes.NewReader(body))
	if err != nil {
		var malformed *service.MalformedRowError
		if errors.As(err, &malformed) {
			return helper.Error(c, http.StatusUnprocessableEntity, "Import dibatalkan: "+malformed.Error())
		}
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Mapping CO terimport", fiber.Map{
		"assessment_id": assessmentID,
		"columns":       count,
	})
}
