// Package event holds the copy for the speaker session the site promotes.
package event

const (
	// Slug identifies this session in outbound email metadata.
	Slug        = "genetic-insights-2025-10-02"
	Title       = "Genetic Insights: Charting a Path Toward a World Without Cancer"
	Tagline     = "Join Dr. Frances Victoria “Ishka” Que for a vital discussion on how cancer genetics and precision medicine are shaping the future of healthcare."
	Date        = "October 2, 2025 | 19:00 PHT"
	Venue       = "Virtual Session via Zoom"
	Organizer   = "Rotary Club of Manila Expats"
	SpeakerName = "Dr. Frances Victoria “Ishka” Que, MD"
	SpeakerRole = "Medical Oncology Specialist & Cancer Genetics Expert"
)

// SpeakerBio is rendered one paragraph per entry.
var SpeakerBio = []string{
	"Dr. Que is a leading Medical Oncology Specialist at the Makati Medical Center with a subspecialty in Cancer Genetics & Genomics. After completing her fellowship training in cancer genomics, she has become one of the foremost oncologists in the Philippines practicing precision oncology.",
	"Her research includes work on the prevalence of pathogenic germline variants among Filipino patients, with published studies showing around 11% prevalence in certain groups, underscoring significant family risk profiles.",
}

// Feature is one "Why This Matters" card.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

var Features = []Feature{
	{"lucide--globe", "Hereditary Risk is Global", "Many expats live away from home yet carry inherited risks. Knowing your risk can mean early detection or prevention, no matter where you live."},
	{"lucide--activity-square", "Access & Cost", "Precision medicine is rapidly advancing in the Philippines. Services are increasingly available locally with faster turnaround and lower cost."},
	{"lucide--shield-check", "Healthcare Planning", "For expats concerned about insurance or long-term care, genetic insights can inform more cost-effective strategies and lifestyle choices."},
}

// SocialLink is a footer link.
type SocialLink struct {
	Icon  string
	Label string
	URL   string
}

var SocialLinks = []SocialLink{
	{"lucide--linkedin", "LinkedIn", "https://www.linkedin.com/company/rotary-international/"},
	{"lucide--twitter", "Twitter", "https://twitter.com/rotary"},
	{"lucide--facebook", "Facebook", "https://www.facebook.com/rotary/"},
}
