package skillgap

import "errors"

var (
	// ErrEmptyResumeSkills is returned when the resume-side extraction
	// produced no skills at all; there is nothing to analyze.
	ErrEmptyResumeSkills = errors.New("resume skills data cannot be empty")

	// ErrEmptyJobSkills is returned when the job-side extraction produced
	// no requirements at all.
	ErrEmptyJobSkills = errors.New("job skills data cannot be empty")
)
