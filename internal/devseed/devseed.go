// Package devseed provides the catalog data the app starts with. There is
// no backing store, so every process boots from these fixtures; admins can
// mutate the in-memory copies afterwards.
package devseed

import (
	"time"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
)

// Contents returns the seeded content catalog.
func Contents() []*model.Content {
	now := time.Now()
	return []*model.Content{
		{
			ID:              "content-1",
			Title:           "Spring Developer Hackathon",
			Category:        model.CategoryContest,
			Description:     "48-hour hackathon for early-career developers. Teams of up to four build a working prototype around this year's theme.",
			Image:           "/static/img/contents/hackathon.svg",
			StartDate:       now.AddDate(0, 0, 14),
			EndDate:         now.AddDate(0, 0, 16),
			Organizer:       "DevHub",
			MaxParticipants: 200,
			Status:          model.StatusUpcoming,
			Tags:            []string{"hackathon", "team", "prototype"},
			CreatedBy:       "admin@devhub.example",
			CreatedAt:       now.AddDate(0, 0, -30),
		},
		{
			ID:                  "content-2",
			Title:               "Backend Bootcamp: Go in Production",
			Category:            model.CategoryEducation,
			Description:         "Six-week evening course covering services, observability, and deployment. Built around a running project, not slides.",
			Image:               "/static/img/contents/bootcamp.svg",
			StartDate:           now.AddDate(0, 0, -7),
			EndDate:             now.AddDate(0, 1, 0),
			Organizer:           "Codecamp",
			MaxParticipants:     40,
			CurrentParticipants: 38,
			Status:              model.StatusOngoing,
			Tags:                []string{"go", "backend", "course"},
			CreatedBy:           "edu@codecamp.example",
			CreatedAt:           now.AddDate(0, 0, -45),
		},
		{
			ID:                  "content-3",
			Title:               "Tech Career Fair 2026",
			Category:            model.CategoryEvent,
			Description:         "Meet hiring teams from forty companies. Bring a resume; on-site coffee chats run all day.",
			Image:               "/static/img/contents/fair.svg",
			StartDate:           now.AddDate(0, 0, 30),
			EndDate:             now.AddDate(0, 0, 30),
			Organizer:           "CareerBridge",
			MaxParticipants:     1000,
			CurrentParticipants: 412,
			Status:              model.StatusUpcoming,
			Tags:                []string{"career", "hiring", "networking"},
			CreatedBy:           "events@careerbridge.example",
			CreatedAt:           now.AddDate(0, 0, -20),
		},
		{
			ID:          "content-4",
			Title:       "Open Source Contribution Sprint",
			Category:    model.CategoryCommunity,
			Description: "Weekend sprint pairing first-time contributors with maintainers of popular Go and TypeScript projects.",
			Image:       "/static/img/contents/sprint.svg",
			StartDate:   now.AddDate(0, 0, -60),
			EndDate:     now.AddDate(0, 0, -58),
			Organizer:   "OSS Korea",
			Status:      model.StatusEnded,
			Tags:        []string{"open-source", "mentoring"},
			CreatedBy:   "admin@devhub.example",
			CreatedAt:   now.AddDate(0, 0, -90),
		},
		{
			ID:                  "content-5",
			Title:               "Algorithm Battle League",
			Category:            model.CategoryContest,
			Description:         "Monthly competitive programming league. Rankings reset each season; top ten get interview fast-tracks.",
			Image:               "/static/img/contents/algorithm.svg",
			StartDate:           now.AddDate(0, 0, -3),
			EndDate:             now.AddDate(0, 2, 0),
			Organizer:           "DevHub",
			MaxParticipants:     500,
			CurrentParticipants: 207,
			Status:              model.StatusOngoing,
			Tags:                []string{"algorithm", "competition"},
			CreatedBy:           "admin@devhub.example",
			CreatedAt:           now.AddDate(0, 0, -10),
		},
	}
}

// Posts returns the seeded community board.
func Posts() []*model.CommunityPost {
	now := time.Now()
	return []*model.CommunityPost{
		{
			ID:        "post-1",
			Title:     "How I prepared for my first backend interview",
			Body:      "Sharing the four-week plan that got me through. Focused on system design basics and lots of mock interviews.",
			Author:    "mina",
			AuthorID:  "user-mina",
			Views:     1024,
			Likes:     87,
			Comments:  23,
			Category:  "career",
			CreatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:        "post-2",
			Title:     "Looking for hackathon teammates (frontend + design)",
			Body:      "Two backend devs looking for a frontend dev and a designer for the Spring Hackathon. We have a fintech idea sketched out.",
			Author:    "jspark",
			AuthorID:  "user-jspark",
			Views:     312,
			Likes:     12,
			Comments:  9,
			Category:  "team-building",
			CreatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID:        "post-3",
			Title:     "Bootcamp week 3 retrospective",
			Body:      "The Go bootcamp is heavier than expected in the best way. Notes on the middleware chapter inside.",
			Author:    "hyun",
			AuthorID:  "user-hyun",
			Views:     540,
			Likes:     45,
			Comments:  14,
			Category:  "study",
			CreatedAt: now.AddDate(0, 0, -5),
		},
	}
}

// CareerPaths returns the seeded career map.
func CareerPaths() []*model.CareerPath {
	return []*model.CareerPath{
		{
			ID:    "career-backend",
			Role:  "Backend Engineer",
			Field: "Server Development",
			Stages: []model.CareerStage{
				{Title: "Junior", Years: "0-2", Skills: []string{"Go or Java", "SQL", "HTTP fundamentals", "Git"}},
				{Title: "Mid-level", Years: "2-5", Skills: []string{"System design", "Caching", "Message queues", "Observability"}},
				{Title: "Senior", Years: "5+", Skills: []string{"Architecture", "Mentoring", "Capacity planning", "Cross-team leadership"}},
			},
		},
		{
			ID:    "career-frontend",
			Role:  "Frontend Engineer",
			Field: "Web Development",
			Stages: []model.CareerStage{
				{Title: "Junior", Years: "0-2", Skills: []string{"HTML/CSS", "TypeScript", "React or Vue", "Accessibility basics"}},
				{Title: "Mid-level", Years: "2-5", Skills: []string{"State management", "Performance", "Testing", "Design systems"}},
				{Title: "Senior", Years: "5+", Skills: []string{"Architecture", "Tooling", "Mentoring", "Product sense"}},
			},
		},
		{
			ID:    "career-data",
			Role:  "Data Engineer",
			Field: "Data Platform",
			Stages: []model.CareerStage{
				{Title: "Junior", Years: "0-2", Skills: []string{"Python", "SQL", "ETL basics", "Airflow"}},
				{Title: "Mid-level", Years: "2-5", Skills: []string{"Spark", "Streaming", "Data modeling", "Cloud warehouses"}},
				{Title: "Senior", Years: "5+", Skills: []string{"Platform design", "Governance", "Cost optimization", "Team leadership"}},
			},
		},
	}
}

// Accounts returns the seeded account directory for the admin users view.
func Accounts() []*model.Account {
	now := time.Now()
	return []*model.Account{
		{
			ID:       "acct-1",
			Email:    "root@platform.example",
			Name:     "Platform Admin",
			Role:     domainauth.RoleSuperAdmin,
			JoinedAt: now.AddDate(-1, 0, 0),
		},
		{
			ID:       "acct-2",
			Email:    "ops@acme.example",
			Name:     "Acme Ops",
			Role:     domainauth.RoleCompanyAdmin,
			Company:  "Acme",
			JoinedAt: now.AddDate(0, -6, 0),
		},
		{
			ID:       "acct-3",
			Email:    "mina@example.com",
			Name:     "Mina Lee",
			Role:     domainauth.RoleUser,
			JoinedAt: now.AddDate(0, -3, 0),
		},
		{
			ID:       "acct-4",
			Email:    "jspark@example.com",
			Name:     "Jisoo Park",
			Role:     domainauth.RoleUser,
			JoinedAt: now.AddDate(0, -1, 0),
		},
		{
			ID:       "acct-5",
			Email:    "ops@globex.example",
			Name:     "Globex Ops",
			Role:     domainauth.RoleCompanyAdmin,
			Company:  "Globex",
			JoinedAt: now.AddDate(0, -2, 0),
		},
	}
}
