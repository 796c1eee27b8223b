package printing

import (
	"fmt"
	"time"
)

type JobStatus string

const (
	JobQueued JobStatus = "QUEUED"
	JobSent   JobStatus = "SENT"
	JobError  JobStatus = "ERROR"
)

func (s JobStatus) String() string { return string(s) }

// Job records one attempt to print an order ticket.
type Job struct {
	id        uint
	orderID   uint
	printerID uint
	status    JobStatus
	payload   string
	errorText *string
	createdAt time.Time
	sentAt    *time.Time
}

func NewJob(orderID, printerID uint, payload string, now time.Time) (*Job, error) {
	if orderID == 0 || printerID == 0 {
		return nil, fmt.Errorf("print job needs an order and a printer")
	}
	return &Job{
		orderID:   orderID,
		printerID: printerID,
		status:    JobQueued,
		payload:   payload,
		createdAt: now,
	}, nil
}

func ReconstructJob(id, orderID, printerID uint, status JobStatus, payload string, errorText *string, createdAt time.Time, sentAt *time.Time) *Job {
	return &Job{
		id:        id,
		orderID:   orderID,
		printerID: printerID,
		status:    status,
		payload:   payload,
		errorText: errorText,
		createdAt: createdAt,
		sentAt:    sentAt,
	}
}

func (j *Job) ID() uint             { return j.id }
func (j *Job) OrderID() uint        { return j.orderID }
func (j *Job) PrinterID() uint      { return j.printerID }
func (j *Job) Status() JobStatus    { return j.status }
func (j *Job) Payload() string      { return j.payload }
func (j *Job) ErrorText() *string   { return j.errorText }
func (j *Job) CreatedAt() time.Time { return j.createdAt }
func (j *Job) SentAt() *time.Time   { return j.sentAt }
func (j *Job) SetID(id uint)        { j.id = id }

func (j *Job) MarkSent(now time.Time) {
	j.status = JobSent
	j.sentAt = &now
	j.errorText = nil
}

func (j *Job) MarkFailed(errText string) {
	j.status = JobError
	j.errorText = &errText
}
