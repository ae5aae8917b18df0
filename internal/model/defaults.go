package model

import "github.com/google/uuid"

// NewEntryID returns an opaque id for a new experience/education/project
// entry. IDs are generated once at creation time and never reused.
func NewEntryID() string {
	return uuid.New().String()
}

// DefaultResume returns the placeholder content used when a user starts a
// new resume.
func DefaultResume() *Resume {
	return &Resume{
		PersonalInfo: PersonalInfo{
			FullName: "John Doe",
			Email:    "john.doe@email.com",
			Phone:    "(555) 123-4567",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/johndoe",
			Website:  "johndoe.dev",
		},
		Summary: "Experienced software engineer with 5+ years of expertise in full-stack development, specializing in React, Node.js, and cloud technologies. Passionate about creating scalable solutions and leading high-performing teams.",
		Experience: []Experience{
			{
				ID:        NewEntryID(),
				Title:     "Senior Software Engineer",
				Company:   "Tech Corp",
				Location:  "San Francisco, CA",
				StartDate: "2022-01",
				Current:   true,
				Description: []string{
					"Led development of microservices architecture serving 1M+ users",
					"Mentored junior developers and conducted code reviews",
					"Improved application performance by 40% through optimization",
				},
			},
		},
		Education: []Education{
			{
				ID:             NewEntryID(),
				Degree:         "Bachelor of Science in Computer Science",
				School:         "University of California",
				Location:       "Berkeley, CA",
				GraduationDate: "2019-05",
			},
		},
		Skills: []string{"JavaScript", "TypeScript", "React", "Node.js", "Go", "PostgreSQL"},
		Projects: []Project{
			{
				ID:           NewEntryID(),
				Name:         "E-Commerce Platform",
				Description:  "Full-stack e-commerce solution with payment integration and real-time inventory management.",
				Technologies: []string{"React", "Node.js", "Stripe", "MongoDB"},
				URL:          "github.com/johndoe/ecommerce",
			},
		},
	}
}
