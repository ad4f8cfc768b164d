package main

import "github.com/Zachkp/portfolio/internal/models"

// defaultProfile fills the public page until the owner saves their own.
var defaultProfile = models.PortfolioData{
	Profile: models.Profile{
		Name:     "Gaurav Kumar",
		Title:    "BCA Student | AI & Data Science Specialist",
		Location: "Araria, Bihar (PIN: 854311)",
		About: `I am Gaurav Kumar, a dedicated BCA 2nd year student studying Computer Science & Applications (CSA)
	at Vivekananda Global University, Jaipur. My specialization is in Artificial Intelligence and Data Science.
	I am passionate about building a career in technology and programming fields.`,
		ProfileImage: models.DefaultProfileImage,
	},
	ContactInfo: models.ContactInfo{
		Email:    "gaurav@example.com",
		Phone:    "+91 XXXXX XXXXX",
		LinkedIn: "#",
		GitHub:   "#",
	},
}
