package seed

import (
	"context"
	"errors"

	"evently/internal/events/service"
	apperrors "evently/pkg/errors"
	"evently/pkg/logger"
	"evently/pkg/model"
)

// Catalog returns the starter events loaded into a fresh database. Each
// entry goes through the regular write pipeline, so slugs, dates and
// times here are normalized on insert.
func Catalog() []*model.Event {
	return []*model.Event{
		{
			Title:       "Next.js Conf 2026",
			Description: "Official Next.js conference with talks, workshops, and community sessions focused on React, server-side rendering, and edge-first architectures.",
			Overview:    "Two days of talks and workshops from the Next.js core team and community.",
			Image:       "/images/event-full.png",
			Venue:       "Moscone Center",
			Location:    "San Francisco, CA",
			Date:        "May 12, 2026",
			Time:        "9:00am",
			Mode:        "hybrid",
			Audience:    "web developers",
			Agenda:      []string{"Keynote", "Server components deep dive", "Edge runtime workshop", "Community sessions"},
			Organizer:   "Vercel",
			Tags:        []string{"next.js", "react", "ssr"},
		},
		{
			Title:       "React Summit 2026",
			Description: "One of the largest React gatherings in Europe with workshops, keynotes and community tracks covering React, state management, and ecosystem tooling.",
			Overview:    "Keynotes and hands-on tracks for the European React community.",
			Image:       "/images/event1.png",
			Venue:       "Kromhouthal",
			Location:    "Amsterdam, Netherlands",
			Date:        "June 2, 2026",
			Time:        "9:30am",
			Mode:        "offline",
			Audience:    "frontend engineers",
			Agenda:      []string{"Opening keynote", "State management track", "Ecosystem tooling track", "Lightning talks"},
			Organizer:   "React Summit Org",
			Tags:        []string{"react", "frontend", "web"},
		},
		{
			Title:       "JSConf Budapest",
			Description: "A community-run JavaScript conference focusing on modern JS, tooling, and language evolution with hands-on workshops and lightning talks.",
			Overview:    "Three days of modern JavaScript, tooling and language evolution.",
			Image:       "/images/event2.png",
			Venue:       "Akvarium Klub",
			Location:    "Budapest, Hungary",
			Date:        "April 22, 2026",
			Time:        "10:00",
			Mode:        "offline",
			Audience:    "javascript developers",
			Agenda:      []string{"Language evolution talks", "Tooling workshops", "Lightning talks"},
			Organizer:   "JSConf Community",
			Tags:        []string{"javascript", "node", "tools"},
		},
		{
			Title:       "GitHub Universe 2025",
			Description: "Annual GitHub flagship event showcasing the latest in developer tools, platform updates, and open source best practices.",
			Overview:    "Product announcements, platform deep dives and open source stories.",
			Image:       "/images/event3.png",
			Venue:       "Pier 36",
			Location:    "New York, NY",
			Date:        "November 18, 2025",
			Time:        "10:00am",
			Mode:        "hybrid",
			Audience:    "developers and maintainers",
			Agenda:      []string{"Keynote", "Platform updates", "Open source best practices"},
			Organizer:   "GitHub",
			Tags:        []string{"devtools", "open-source", "platform"},
		},
		{
			Title:       "HackMIT 2026",
			Description: "Student-run hackathon bringing students from around the world to build, learn, and network. Beginner-friendly with mentors and workshops.",
			Overview:    "A 24 hour on-campus hackathon for students of all experience levels.",
			Image:       "/images/event4.png",
			Venue:       "MIT Johnson Athletic Center",
			Location:    "Cambridge, MA",
			Date:        "January 17, 2026",
			Time:        "6:00pm",
			Mode:        "offline",
			Audience:    "students",
			Agenda:      []string{"Opening ceremony", "Hacking begins", "Mentor office hours", "Project judging"},
			Organizer:   "HackMIT",
			Tags:        []string{"hackathon", "students", "projects"},
		},
		{
			Title:       "Serverless Days 2026",
			Description: "A community conference covering serverless architectures, edge computing, and cloud-native patterns, with hands-on labs and case studies.",
			Overview:    "Serverless and edge computing patterns with hands-on labs.",
			Image:       "/images/event5.png",
			Venue:       "Kulturbrauerei",
			Location:    "Berlin, Germany",
			Date:        "2026-03-11",
			Time:        "9:00am",
			Mode:        "hybrid",
			Audience:    "cloud engineers",
			Agenda:      []string{"Architecture case studies", "Edge computing lab", "Cloud-native patterns"},
			Organizer:   "ServerlessDays Community",
			Tags:        []string{"serverless", "cloud", "edge"},
		},
		{
			Title:       "NYC Dev Meetup November",
			Description: "Monthly developer meetup with lightning talks, networking, and live demos. Great for local engineers and folks new to the city.",
			Overview:    "An evening of lightning talks, demos and networking.",
			Image:       "/images/event6.png",
			Venue:       "Meetup Space",
			Location:    "New York, NY",
			Date:        "November 20, 2025",
			Time:        "6:30pm",
			Mode:        "offline",
			Audience:    "local engineers",
			Agenda:      []string{"Lightning talks", "Live demos", "Networking"},
			Organizer:   "NYC Devs",
			Tags:        []string{"meetup", "networking", "talks"},
		},
	}
}

// Run inserts the catalog through the event service. Events whose slug
// already exists are skipped, so reseeding an existing database is safe.
func Run(ctx context.Context, svc service.EventService, log *logger.Logger) error {
	var seeded, skipped int

	for _, event := range Catalog() {
		err := svc.Create(ctx, event)
		if err == nil {
			seeded++
			continue
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.CodeConflict {
			log.Info("Seed event already exists, skipping", "title", event.Title)
			skipped++
			continue
		}

		log.Error("Failed to seed event", "title", event.Title, "error", err)
		return err
	}

	log.Info("Seeding finished", "seeded", seeded, "skipped", skipped)
	return nil
}
