package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobPost() JobPostRequest {
	return JobPostRequest{
		Title:        "Backend Engineer",
		Category:     "Engineering",
		Location:     "Remote",
		Type:         "Full-time",
		Experience:   "3+ years",
		Description:  "Build and operate our careers platform backend services.",
		Requirements: []string{"Go experience"},
	}
}

func TestJobPostValid(t *testing.T) {
	v := New()
	assert.Nil(t, Check(v, validJobPost()))
}

func TestJobPostReportsAllViolationsAtOnce(t *testing.T) {
	v := New()

	req := validJobPost()
	req.Title = ""
	req.Category = "Astrology"

	errs := Check(v, req)
	require.NotNil(t, errs)

	// Both field errors must be present in a single pass
	assert.Equal(t, "Job title is required", errs["title"])
	assert.Equal(t, "Please select a valid category", errs["category"])
}

func TestJobPostFieldRules(t *testing.T) {
	v := New()

	t.Run("short title", func(t *testing.T) {
		req := validJobPost()
		req.Title = "Go"
		errs := Check(v, req)
		require.NotNil(t, errs)
		assert.Equal(t, "Title must be at least 3 characters", errs["title"])
	})

	t.Run("short description", func(t *testing.T) {
		req := validJobPost()
		req.Description = "Too short"
		errs := Check(v, req)
		require.NotNil(t, errs)
		assert.Equal(t, "Description must be at least 20 characters", errs["description"])
	})

	t.Run("invalid type", func(t *testing.T) {
		req := validJobPost()
		req.Type = "Gig"
		errs := Check(v, req)
		require.NotNil(t, errs)
		assert.Equal(t, "Please select a valid job type", errs["type"])
	})

	t.Run("empty requirements", func(t *testing.T) {
		req := validJobPost()
		req.Requirements = []string{}
		errs := Check(v, req)
		require.NotNil(t, errs)
		assert.Equal(t, "At least one requirement is needed", errs["requirements"])
	})
}

func TestJobPostUpdatePartial(t *testing.T) {
	v := New()

	// Nothing provided is a valid (empty) partial update
	assert.Nil(t, Check(v, JobPostUpdateRequest{}))

	title := "Go"
	errs := Check(v, JobPostUpdateRequest{Title: &title})
	require.NotNil(t, errs)
	assert.Equal(t, "Title must be at least 3 characters", errs["title"])
}

func validApplication() JobApplicationRequest {
	return JobApplicationRequest{
		Name:      "Jane Doe",
		Email:     "jane@x.com",
		JobPostID: "job-1",
	}
}

func TestJobApplicationValid(t *testing.T) {
	v := New()
	assert.Nil(t, Check(v, validApplication()))
}

func TestJobApplicationPhonePattern(t *testing.T) {
	v := New()

	ok := "+1 (555) 123-4567"
	req := validApplication()
	req.Phone = &ok
	assert.Nil(t, Check(v, req))

	bad := "call me maybe"
	req.Phone = &bad
	errs := Check(v, req)
	require.NotNil(t, errs)
	assert.Equal(t, "Please enter a valid phone number", errs["phone"])
}

func TestJobApplicationCoverLetterMax(t *testing.T) {
	v := New()

	long := strings.Repeat("a", 2001)
	req := validApplication()
	req.CoverLetter = &long
	errs := Check(v, req)
	require.NotNil(t, errs)
	assert.Equal(t, "Cover letter must be less than 2000 characters", errs["coverLetter"])
}

func TestLoginSchema(t *testing.T) {
	v := New()

	errs := Check(v, LoginRequest{Email: "not-an-email"})
	require.NotNil(t, errs)
	assert.Equal(t, "Please enter a valid email address", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])

	assert.Nil(t, Check(v, LoginRequest{Email: "admin@example.com", Password: "pw"}))
}

func TestApplicationStatusSchema(t *testing.T) {
	v := New()

	errs := Check(v, ApplicationStatusRequest{Status: "archived"})
	require.NotNil(t, errs)
	assert.Equal(t, "Please select a valid status", errs["status"])

	for _, s := range []string{"pending", "reviewed", "accepted", "rejected"} {
		assert.Nil(t, Check(v, ApplicationStatusRequest{Status: s}))
	}
}
