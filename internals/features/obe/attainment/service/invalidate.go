// file: internals/features/obe/attainment/service/invalidate.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "obetrack_backend/internals/features/obe/attainment/model"
	gmodel "obetrack_backend/internals/features/obe/grades/model"
)

// InvalidateDerived menghapus seluruh derived record satu course
// (dipanggil di dalam transaksi pemicu: delete/reupload input).
// Recompute berikutnya mengisi ulang dari nol.
func InvalidateDerived(tx *gorm.DB, courseID uuid.UUID) error {
	if err := tx.Where("co_assessment_result_course_id = ?", courseID).
		Delete(&amodel.COAssessmentResultModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("combined_co_attainment_course_id = ?", courseID).
		Delete(&amodel.CombinedCOAttainmentModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("po_attainment_course_id = ?", courseID).
		Delete(&amodel.POAttainmentModel{}).Error; err != nil {
		return err
	}
	return tx.Where("final_grade_course_id = ?", courseID).
		Delete(&gmodel.FinalGradeModel{}).Error
}
