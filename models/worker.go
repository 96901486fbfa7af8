package models

// WorkerProfile is the read-only projection shown on the assignment review
// screen.
type WorkerProfile struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Rating          float64 `json:"rating"`
	TotalRatings    int     `json:"totalRatings"`
	ExperienceYears int     `json:"experienceYears"`
	Phone           string  `json:"phone"`
	City            string  `json:"city"`
	Bio             string  `json:"bio,omitempty"`
	Skills          string  `json:"skills,omitempty"`
	Certifications  string  `json:"certifications,omitempty"`
}

// Worker is the slim lookup used by the pre-booking summary.
type Worker struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
