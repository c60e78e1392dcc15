package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExaminationStatus is the clinical workflow state of an examination.
type ExaminationStatus string

// Examination statuses.
const (
	ExaminationWaiting    ExaminationStatus = "waiting"
	ExaminationInProgress ExaminationStatus = "in_progress"
	ExaminationDone       ExaminationStatus = "done"
	ExaminationCanceled   ExaminationStatus = "canceled"
)

// Examination is one billed clinical service for a patient.
type Examination struct {
	CreatedAt   time.Time         `json:"created_at"`
	ID          string            `json:"id"`
	Code        string            `json:"code"`
	PatientID   string            `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	ServiceName string            `json:"service_name"`
	DoctorName  string            `json:"doctor_name"`
	BranchName  string            `json:"branch_name"`
	Status      ExaminationStatus `json:"status"`
	Fee         decimal.Decimal   `json:"fee"`
}
