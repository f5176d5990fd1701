package validation

// Request schemas for every mutating endpoint. Field rules mirror what the
// public site's forms promise, so both sides reject the same inputs.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type JobPostRequest struct {
	Title        string   `json:"title" validate:"required,min=3"`
	Category     string   `json:"category" validate:"required,oneof=Engineering Design Marketing Sales Operations Other"`
	Location     string   `json:"location" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=Full-time Part-time Contract Remote Internship"`
	Experience   string   `json:"experience" validate:"required"`
	Description  string   `json:"description" validate:"required,min=20"`
	Requirements []string `json:"requirements" validate:"required,min=1,dive,required"`
	// Defaults to true when omitted.
	IsActive *bool `json:"isActive"`
}

// JobPostUpdateRequest is a partial merge: nil fields keep their stored
// value, provided fields are validated with the same rules as create.
type JobPostUpdateRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=3"`
	Category     *string  `json:"category" validate:"omitempty,oneof=Engineering Design Marketing Sales Operations Other"`
	Location     *string  `json:"location" validate:"omitempty,min=1"`
	Type         *string  `json:"type" validate:"omitempty,oneof=Full-time Part-time Contract Remote Internship"`
	Experience   *string  `json:"experience" validate:"omitempty,min=1"`
	Description  *string  `json:"description" validate:"omitempty,min=20"`
	Requirements []string `json:"requirements" validate:"omitempty,min=1,dive,required"`
	IsActive     *bool    `json:"isActive"`
}

type JobApplicationRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone" validate:"omitempty,phone_chars"`
	ResumeURL   *string `json:"resumeUrl"`
	CoverLetter *string `json:"coverLetter" validate:"omitempty,max=2000"`
	JobPostID   string  `json:"jobPostId" validate:"required"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}
