package domain

import "time"

type Collaborator struct {
	ID              string     `json:"id"`
	EmployeeCode    string     `json:"employee_code"`
	StoreCode       string     `json:"store_code"`
	Name            string     `json:"name"`
	JobPositionCode string     `json:"job_position_code"`
	Document        string     `json:"document"`
	Active          bool       `json:"active"`
	AdmissionDate   *time.Time `json:"admission_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CollaboratorKey struct {
	EmployeeCode string
	StoreCode    string
}

func (c *Collaborator) Key() CollaboratorKey {
	return CollaboratorKey{
		EmployeeCode: c.EmployeeCode,
		StoreCode:    c.StoreCode,
	}
}
