// file: internals/features/obe/outcomes/service/mapping_csv_service.go
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "obetrack_backend/internals/features/obe/attainment/model"
	asvc "obetrack_backend/internals/features/obe/attainment/service"
	omodel "obetrack_backend/internals/features/obe/outcomes/model"
)

/* ========================================================
   CO MAPPING CSV
   Kontrak 3 kolom: column_name,max_marks,co_label
   (+ kolom opsional ke-4 `optional_group`).
   Template yang didownload lalu diupload ulang tanpa diubah
   harus menghasilkan baris QuestionColumn yang identik.
======================================================== */

var csvHeader = []string{"column_name", "max_marks", "co_label"}

// MalformedRowError satu baris rusak = seluruh import batal.
type MalformedRowError struct {
	Line   int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("baris %d: %s", e.Line, e.Reason)
}

// MappingRow hasil parse satu baris CSV.
type MappingRow struct {
	ColumnName      string
	MaxMarks        float64
	CONumber        *int
	OptionalGroupID *string
}

type MappingCSVService struct {
	DB *gorm.DB
}

func NewMappingCSVService(db *gorm.DB) *MappingCSVService {
	return &MappingCSVService{DB: db}
}

// ParseMappingCSV membaca dan memvalidasi seluruh file.
// Baris rusak mana pun membatalkan semuanya (tidak ada import parsial).
func ParseMappingCSV(r io.Reader) ([]MappingRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // kolom ke-4 opsional
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV tidak bisa dibaca: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("CSV kosong")
	}

	header := records[0]
	if len(header) < 3 ||
		strings.TrimSpace(strings.ToLower(header[0])) != csvHeader[0] ||
		strings.TrimSpace(strings.ToLower(header[1])) != csvHeader[1] ||
		strings.TrimSpace(strings.ToLower(header[2])) != csvHeader[2] {
		return nil, &MalformedRowError{Line: 1, Reason: "header harus column_name,max_marks,co_label"}
	}

	rows := make([]MappingRow, 0, len(records)-1)
	seen := map[string]bool{}

	for i, rec := range records[1:] {
		line := i + 2

		if len(rec) < 3 {
			return nil, &MalformedRowError{Line: line, Reason: "kurang dari 3 kolom"}
		}

		name := strings.ToLower(strings.TrimSpace(rec[0]))
		if name == "" {
			return nil, &MalformedRowError{Line: line, Reason: "column_name kosong"}
		}
		if seen[name] {
			return nil, &MalformedRowError{Line: line, Reason: "column_name duplikat: " + name}
		}
		seen[name] = true

		maxMarks, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil || maxMarks < 0 {
			return nil, &MalformedRowError{Line: line, Reason: "max_marks bukan angka ≥ 0: " + rec[1]}
		}

		row := MappingRow{ColumnName: name, MaxMarks: maxMarks}

		coLabel := strings.ToLower(strings.TrimSpace(rec[2]))
		if coLabel != "" {
			if !strings.HasPrefix(coLabel, "co") {
				return nil, &MalformedRowError{Line: line, Reason: "co_label harus format coN: " + rec[2]}
			}
			n, err := strconv.Atoi(coLabel[2:])
			if err != nil || n < 1 {
				return nil, &MalformedRowError{Line: line, Reason: "co_label harus format coN: " + rec[2]}
			}
			row.CONumber = &n
		}

		if len(rec) >= 4 {
			if g := strings.ToLower(strings.TrimSpace(rec[3])); g != "" {
				row.OptionalGroupID = &g
			}
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("CSV tidak punya baris data")
	}
	return rows, nil
}

// RenderMappingCSV menulis balik kontrak yang sama.
// Kolom optional_group hanya ikut bila memang ada yang terisi,
// supaya file 3 kolom round-trip byte-for-byte.
func RenderMappingCSV(cols []omodel.QuestionColumnModel) []byte {
	hasGroup := false
	for _, c := range cols {
		if c.QuestionColumnOptionalGroupID != nil {
			hasGroup = true
			break
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := csvHeader
	if hasGroup {
		header = append(append([]string{}, csvHeader...), "optional_group")
	}
	_ = w.Write(header)

	for _, c := range cols {
		coLabel := ""
		if c.QuestionColumnCONumber != nil {
			coLabel = "co" + strconv.Itoa(*c.QuestionColumnCONumber)
		}
		rec := []string{
			c.QuestionColumnName,
			strconv.FormatFloat(c.QuestionColumnMaxMarks, 'f', -1, 64),
			coLabel,
		}
		if hasGroup {
			g := ""
			if c.QuestionColumnOptionalGroupID != nil {
				g = *c.QuestionColumnOptionalGroupID
			}
			rec = append(rec, g)
		}
		_ = w.Write(rec)
	}

	w.Flush()
	return buf.Bytes()
}

// Template merender CSV mapping satu assessment.
// Assessment tanpa kolom menghasilkan template berisi header saja.
func (s *MappingCSVService) Template(ctx context.Context, assessmentID uuid.UUID) ([]byte, error) {
	var cols []omodel.QuestionColumnModel
	if err := s.DB.WithContext(ctx).
		Where("question_column_assessment_id = ?", assessmentID).
		Order("question_column_name ASC").
		Find(&cols).Error; err != nil {
		return nil, err
	}
	return RenderMappingCSV(cols), nil
}

// Import mengganti seluruh set kolom soal assessment dalam satu
// transaksi + menginvalidasi derived record course terkait.
// Gagal di baris mana pun = tidak ada yang tersimpan.
func (s *MappingCSVService) Import(ctx context.Context, assessmentID uuid.UUID, r io.Reader) (int, error) {
	rows, err := ParseMappingCSV(r)
	if err != nil {
		return 0, err
	}

	var assessment amodel.AssessmentModel
	if err := s.DB.WithContext(ctx).
		First(&assessment, "assessment_id = ?", assessmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return 0, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_column_assessment_id = ?", assessmentID).
			Delete(&omodel.QuestionColumnModel{}).Error; err != nil {
			return err
		}

		models := make([]omodel.QuestionColumnModel, 0, len(rows))
		for _, row := range rows {
			models = append(models, omodel.QuestionColumnModel{
				QuestionColumnAssessmentID:    assessmentID,
				QuestionColumnName:            row.ColumnName,
				QuestionColumnMaxMarks:        row.MaxMarks,
				QuestionColumnCONumber:        row.CONumber,
				QuestionColumnOptionalGroupID: row.OptionalGroupID,
			})
		}
		if err := tx.Create(&models).Error; err != nil {
			return err
		}

		// mapping berubah → derived record course ini basi
		return asvc.InvalidateDerived(tx, assessment.AssessmentCourseID)
	})
	if err != nil {
		return 0, err
	}

	log.Printf("[CSV] import mapping assessment=%s: %d kolom", assessmentID, len(rows))
	return len(rows), nil
}
