package job

import (
	"time"

	"jobport/internal/common"
)

type Job struct {
	ID              common.UUID `json:"id"`
	RecruiterID     common.UUID `json:"recruiter_id"`
	Title           string      `json:"title"`
	Company         string      `json:"company,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
	Role            string      `json:"role,omitempty"`
	MinSalary       int         `json:"min_salary,omitempty"`
	MaxSalary       int         `json:"max_salary,omitempty"`
	SalaryType      string      `json:"salary_type,omitempty"`
	Education       string      `json:"education,omitempty"`
	Experience      string      `json:"experience,omitempty"`
	JobType         string      `json:"job_type,omitempty"`
	JobLevel        string      `json:"job_level,omitempty"`
	Vacancies       int         `json:"vacancies,omitempty"`
	ExpirationDate  *time.Time  `json:"expiration_date,omitempty"`
	LocationCountry string      `json:"location_country,omitempty"`
	LocationCity    string      `json:"location_city,omitempty"`
	IsRemote        bool        `json:"is_remote"`
	Benefits        []string    `json:"benefits,omitempty"`
	Description     string      `json:"description,omitempty"`
	ApplyMethod     string      `json:"apply_method,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
