// file: internals/features/obe/attainment/service/recompute_service.go
package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "obetrack_backend/internals/features/obe/attainment/model"
	gmodel "obetrack_backend/internals/features/obe/grades/model"
	gsvc "obetrack_backend/internals/features/obe/grades/service"
	omodel "obetrack_backend/internals/features/obe/outcomes/model"
	"obetrack_backend/internals/features/obe/policy"
)

/* ========================================================
   RECOMPUTE ORCHESTRATOR
   Satu panggilan sinkron per course:
   load input → fail-fast prasyarat → hitung semua derived
   → replace utuh dalam SATU transaksi.
   Request paralel utk course yang sama di-coalesce ke satu
   recompute in-flight; course berbeda jalan independen.
======================================================== */

type RecomputeService struct {
	DB     *gorm.DB
	Policy policy.GradingPolicy

	mu       sync.Mutex
	inflight map[uuid.UUID]*recomputeCall
}

type recomputeCall struct {
	done chan struct{}
	err  error
}

func NewRecomputeService(db *gorm.DB, pol policy.GradingPolicy) *RecomputeService {
	return &RecomputeService{
		DB:       db,
		Policy:   pol,
		inflight: make(map[uuid.UUID]*recomputeCall),
	}
}

// RecomputeCourse menghitung ulang seluruh derived record satu course.
// Idempoten: input sama → hasil identik. Gagal di tahap mana pun →
// rollback penuh, snapshot derived sebelumnya tetap utuh.
func (s *RecomputeService) RecomputeCourse(ctx context.Context, courseID uuid.UUID) error {
	s.mu.Lock()
	if call, ok := s.inflight[courseID]; ok {
		// sudah ada recompute in-flight utk course ini: tunggu hasilnya
		s.mu.Unlock()
		log.Printf("[RECOMPUTE] course=%s coalesce ke recompute berjalan", courseID)
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	call := &recomputeCall{done: make(chan struct{})}
	s.inflight[courseID] = call
	s.mu.Unlock()

	call.err = s.recompute(ctx, courseID)

	s.mu.Lock()
	delete(s.inflight, courseID)
	s.mu.Unlock()
	close(call.done)

	return call.err
}

func (s *RecomputeService) recompute(ctx context.Context, courseID uuid.UUID) error {
	log.Printf("[RECOMPUTE] course=%s mulai", courseID)

	// 1) Prasyarat: CO harus ada
	var cos []omodel.CourseOutcomeModel
	if err := s.DB.WithContext(ctx).
		Where("course_outcome_course_id = ?", courseID).
		Order("course_outcome_co_number ASC").
		Find(&cos).Error; err != nil {
		return err
	}
	if len(cos) == 0 {
		return ErrNoCourseOutcomes
	}

	mappings := map[int]map[int]int{}
	for i := range cos {
		mp, err := cos[i].POMappings()
		if err != nil {
			return err
		}
		mappings[cos[i].CourseOutcomeCONumber] = mp
	}

	// 2) Assessments + kolom soal (prasyarat: mapping terupload)
	var assessments []amodel.AssessmentModel
	if err := s.DB.WithContext(ctx).
		Where("assessment_course_id = ?", courseID).
		Order("assessment_type ASC").
		Find(&assessments).Error; err != nil {
		return err
	}

	inputs := make([]assessmentInputView, 0, len(assessments))

	for _, a := range assessments {
		questions, err := s.LoadQuestionInputs(ctx, a.AssessmentID)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			return &NoQuestionMappingError{AssessmentID: a.AssessmentID, AssessmentType: a.AssessmentType}
		}
		inputs = append(inputs, assessmentInputView{assessment: a, questions: questions})
	}

	// 3) Kalkulasi (murni, deterministik)
	coRows := make([]amodel.COAssessmentResultModel, 0)
	perAssessment := make([][]COAssessmentResult, 0, len(inputs))
	for _, in := range inputs {
		results := AggregateByCO(s.Policy, in.questions)
		perAssessment = append(perAssessment, results)
		for _, r := range results {
			coRows = append(coRows, amodel.COAssessmentResultModel{
				COAssessmentResultCourseID:          courseID,
				COAssessmentResultAssessmentID:      in.assessment.AssessmentID,
				COAssessmentResultCONumber:          r.CONumber,
				COAssessmentResultTotalMaxMarks:     r.TotalMaxMarks,
				COAssessmentResultAttempts:          r.Attempts,
				COAssessmentResultAboveThreshold:    r.AboveThreshold,
				COAssessmentResultAttainmentPercent: r.AttainmentPercent,
				COAssessmentResultNoData:            r.NoData,
				COAssessmentResultPolicyVersion:     s.Policy.Version,
			})
		}
	}

	combined := CombineAcrossAssessments(perAssessment)
	combinedRows := make([]amodel.CombinedCOAttainmentModel, 0, len(combined))
	for _, c := range combined {
		combinedRows = append(combinedRows, amodel.CombinedCOAttainmentModel{
			CombinedCOAttainmentCourseID:            courseID,
			CombinedCOAttainmentCONumber:            c.CONumber,
			CombinedCOAttainmentTotalMaxMarks:       c.TotalMaxMarks,
			CombinedCOAttainmentTotalAttempts:       c.TotalAttempts,
			CombinedCOAttainmentTotalAboveThreshold: c.TotalAboveThreshold,
			CombinedCOAttainmentOverallPercent:      c.OverallAttainmentPercent,
			CombinedCOAttainmentNoData:              c.NoData,
			CombinedCOAttainmentPolicyVersion:       s.Policy.Version,
		})
	}

	pos := ResolvePOAttainment(s.Policy, combined, mappings)
	poRows := make([]amodel.POAttainmentModel, 0, len(pos))
	for _, p := range pos {
		poRows = append(poRows, amodel.POAttainmentModel{
			POAttainmentCourseID:      courseID,
			POAttainmentPONumber:      p.PONumber,
			POAttainmentLevel:         p.AttainmentLevel,
			POAttainmentPercent:       p.AttainmentPercent,
			POAttainmentPolicyVersion: s.Policy.Version,
		})
	}

	gradeRows, err := s.composeGrades(courseID, inputs)
	if err != nil {
		return err
	}

	// 4) Replace atomik seluruh derived record course ini
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
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
		if err := tx.Where("final_grade_course_id = ?", courseID).
			Delete(&gmodel.FinalGradeModel{}).Error; err != nil {
			return err
		}

		if len(coRows) > 0 {
			if err := tx.Create(&coRows).Error; err != nil {
				return err
			}
		}
		if len(combinedRows) > 0 {
			if err := tx.Create(&combinedRows).Error; err != nil {
				return err
			}
		}
		if len(poRows) > 0 {
			if err := tx.Create(&poRows).Error; err != nil {
				return err
			}
		}
		if len(gradeRows) > 0 {
			if err := tx.Create(&gradeRows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[RECOMPUTE] course=%s GAGAL: %v (derived lama tetap utuh)", courseID, err)
		return err
	}

	log.Printf("[RECOMPUTE] course=%s selesai: %d CO/assessment, %d combined, %d PO, %d grade",
		courseID, len(coRows), len(combinedRows), len(poRows), len(gradeRows))
	return nil
}

type assessmentInputView struct {
	assessment amodel.AssessmentModel
	questions  []QuestionInput
}

// LoadQuestionInputs membangun input kalkulasi satu assessment dari
// kolom soal + jawaban ter-normalisasi.
func (s *RecomputeService) LoadQuestionInputs(ctx context.Context, assessmentID uuid.UUID) ([]QuestionInput, error) {
	var cols []omodel.QuestionColumnModel
	if err := s.DB.WithContext(ctx).
		Where("question_column_assessment_id = ?", assessmentID).
		Order("question_column_name ASC").
		Find(&cols).Error; err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, nil
	}

	var responses []amodel.StudentResponseModel
	if err := s.DB.WithContext(ctx).
		Where("student_response_assessment_id = ?", assessmentID).
		Find(&responses).Error; err != nil {
		return nil, err
	}

	byColumn := map[string][]StudentMark{}
	for _, r := range responses {
		state := MarkCounted
		if r.StudentResponseSelected != nil && !*r.StudentResponseSelected {
			state = MarkNotSelected
		}
		mark := StudentMark{
			StudentID: r.StudentResponseStudentID,
			State:     state,
		}
		if state == MarkCounted {
			mark.Marks = r.StudentResponseMarks
		}
		byColumn[r.StudentResponseColumnName] = append(byColumn[r.StudentResponseColumnName], mark)
	}

	questions := make([]QuestionInput, 0, len(cols))
	for _, c := range cols {
		questions = append(questions, QuestionInput{
			ColumnName:      c.QuestionColumnName,
			MaxMarks:        c.QuestionColumnMaxMarks,
			CONumber:        c.QuestionColumnCONumber,
			OptionalGroupID: c.QuestionColumnOptionalGroupID,
			Marks:           byColumn[c.QuestionColumnName],
		})
	}
	return questions, nil
}

// composeGrades menyusun FinalGrade tiap siswa dari total counted marks
// per assessment, memakai bobot komponen dari policy.
func (s *RecomputeService) composeGrades(courseID uuid.UUID, inputs []assessmentInputView) ([]gmodel.FinalGradeModel, error) {
	// total counted marks per siswa per assessment
	type studentTotals map[uuid.UUID]float64
	totals := map[uuid.UUID]studentTotals{} // assessment → student → total
	students := map[uuid.UUID]bool{}

	for _, in := range inputs {
		t := studentTotals{}
		for _, q := range in.questions {
			if q.Ignored() {
				continue
			}
			for _, m := range q.Marks {
				if m.State == MarkNotSelected {
					continue
				}
				t[m.StudentID] += m.Marks
				students[m.StudentID] = true
			}
		}
		totals[in.assessment.AssessmentID] = t
	}

	rows := make([]gmodel.FinalGradeModel, 0, len(students))
	for sid := range students {
		in := gsvc.GradeInput{StudentID: sid}

		for _, a := range inputs {
			t, ok := totals[a.assessment.AssessmentID][sid]
			if !ok {
				// komponen belum ada utk siswa ini: jangan dianggap nol
				continue
			}
			cs := gsvc.ComponentScore{Raw: t, OriginalMax: a.assessment.AssessmentMaxMarks}
			switch a.assessment.AssessmentType {
			case amodel.AssessmentTypeCIE1, amodel.AssessmentTypeCIE2, amodel.AssessmentTypeCIE3:
				cs.Weight = s.Policy.Weights.CIE
				in.CIE = append(in.CIE, cs)
			case amodel.AssessmentTypeAAT:
				cs.Weight = s.Policy.Weights.AAT
				c := cs
				in.AAT = &c
			case amodel.AssessmentTypeQuiz:
				cs.Weight = s.Policy.Weights.Quiz
				c := cs
				in.Quiz = &c
			case amodel.AssessmentTypeSEE:
				cs.Weight = s.Policy.Weights.SEE
				c := cs
				in.SEE = &c
			}
		}

		g := gsvc.ComposeFinalGrade(s.Policy, in)
		rows = append(rows, gmodel.FinalGradeModel{
			FinalGradeStudentID:     sid,
			FinalGradeCourseID:      courseID,
			FinalGradeCIETotal:      g.CIETotal,
			FinalGradeCIEMax:        g.CIEMax,
			FinalGradeSEETotal:      g.SEETotal,
			FinalGradeSEEMax:        g.SEEMax,
			FinalGradeFinalTotal:    g.FinalTotal,
			FinalGradeFinalMax:      g.FinalMax,
			FinalGradePercentage:    g.FinalPercent,
			FinalGradeLetter:        g.LetterGrade,
			FinalGradeGradePoints:   g.GradePoints,
			FinalGradeIsPassed:      g.IsPassed,
			FinalGradePolicyVersion: s.Policy.Version,
		})
	}
	return rows, nil
}
