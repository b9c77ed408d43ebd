package domain

// Experience levels, mutually exclusive.
const (
	ExperienceEntry      = "Entry"
	ExperienceMid        = "Mid"
	ExperienceSenior     = "Senior"
	ExperienceManagement = "Management"
)

// Content types, exactly one per record.
const (
	ContentJobDescription      = "Job Description"
	ContentInterviewQuestion   = "Interview Question"
	ContentCareerAdvice        = "Career Advice"
	ContentTechnicalDiscussion = "Technical Discussion"
	ContentCompanyInfo         = "Company Info"
)

// Company size buckets.
const (
	SizeStartup = "Startup"
	SizeMedium  = "Medium"
	SizeLarge   = "Large"
	SizeUnknown = "Unknown"
)
