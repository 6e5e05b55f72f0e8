package admin

import (
	"github.com/nexatech/nexatech-web/internal/content/domain"
)

func PortfolioSchema() Schema[domain.PortfolioItem] {
	s := Schema[domain.PortfolioItem]{
		Singular: "Portfolio Item",
		Plural:   "Portfolio Items",
		Empty:    "No portfolio items found. Create your first portfolio item!",
		Fields: []Field{
			{Name: "id", Label: "Project ID", Kind: KindText, Required: true, Immutable: true, Placeholder: "ecommerce-platform"},
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "tagline", Label: "Tagline", Kind: KindText, Required: true, Wide: true},
			{Name: "category", Label: "Category", Kind: KindSelect, Required: true, Options: enumNames(domain.Categories()),
				Default: domain.CategoryWebDevelopment.String()},
			{Name: "status", Label: "Status", Kind: KindSelect, Required: true, Options: enumNames(domain.ProjectStatuses()),
				Default: domain.ProjectCompleted.String()},
			{Name: "image", Label: "Project Image", Kind: KindImage, Placeholder: "https://...", Wide: true},
			{Name: "color", Label: "Color Theme", Kind: KindSelect, Required: true, Options: enumNames(domain.Colors()), Default: domain.ColorBlue.String()},
			{Name: "client", Label: "Client", Kind: KindText, Required: true},
			{Name: "duration", Label: "Duration", Kind: KindText, Required: true, Placeholder: "4 months"},
			{Name: "liveLink", Label: "Live Link (optional)", Kind: KindURL, Placeholder: "https://example.com"},
			{Name: "description", Label: "Short Description", Kind: KindTextarea, Required: true, Wide: true},
			{Name: "fullDescription", Label: "Full Description", Kind: KindTextarea, Required: true, Wide: true},
			{Name: "technologies", Label: "Technologies (comma-separated)", Kind: KindList, Wide: true,
				Placeholder: "React, Node.js, MongoDB, Tailwind CSS"},
			{Name: "features", Label: "Key Features (comma-separated)", Kind: KindList, Wide: true,
				Placeholder: "Responsive Design, User Authentication, Payment Integration"},
			{Name: "results", Label: "Results (one per line)", Kind: KindList, Multiline: true, Wide: true},
		},
		Key: func(p domain.PortfolioItem) string { return p.Key() },
		Row: func(p domain.PortfolioItem) Row {
			return Row{
				ID:          p.ID,
				Title:       p.Title,
				Subtitle:    p.Category.String(),
				Description: p.Description,
				Image:       p.Image,
				Badge:       p.Status.String(),
				Color:       p.Color,
				Tags:        p.Technologies,
			}
		},
	}
	s.Values = func(p domain.PortfolioItem) Values {
		return Values{
			"id":              p.ID,
			"title":           p.Title,
			"tagline":         p.Tagline,
			"category":        p.Category.String(),
			"status":          p.Status.String(),
			"image":           p.Image,
			"color":           p.Color.String(),
			"client":          p.Client,
			"duration":        p.Duration,
			"liveLink":        p.LiveLink,
			"description":     p.Description,
			"fullDescription": p.FullDescription,
			"technologies":    s.join("technologies", p.Technologies),
			"features":        s.join("features", p.Features),
			"results":         s.join("results", p.Results),
		}
	}
	s.Build = func(v Values) (domain.PortfolioItem, error) {
		var p domain.PortfolioItem
		var err error
		if p.Category, err = domain.ParseCategory(v["category"]); err != nil {
			return p, err
		}
		if p.Status, err = domain.ParseProjectStatus(v["status"]); err != nil {
			return p, err
		}
		if p.Color, err = domain.ParseColor(v["color"]); err != nil {
			return p, err
		}
		p.ID = v["id"]
		p.Title = v["title"]
		p.Tagline = v["tagline"]
		p.Image = v["image"]
		p.Client = v["client"]
		p.Duration = v["duration"]
		p.LiveLink = v["liveLink"]
		p.Description = v["description"]
		p.FullDescription = v["fullDescription"]
		p.Technologies = s.split(v, "technologies")
		p.Features = s.split(v, "features")
		p.Results = s.split(v, "results")
		return p, nil
	}
	return s
}
