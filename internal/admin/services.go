package admin

import (
	"github.com/nexatech/nexatech-web/internal/content/domain"
)

func ServiceSchema() Schema[domain.Service] {
	s := Schema[domain.Service]{
		Singular: "Service",
		Plural:   "Services",
		Empty:    "No services found. Create your first service!",
		Fields: []Field{
			{Name: "id", Label: "Service ID", Kind: KindText, Required: true, Immutable: true, Placeholder: "web-dev",
				Help: "Used in the page URL. Cannot be changed later."},
			{Name: "icon", Label: "Icon Name", Kind: KindText, Required: true, Placeholder: "Globe"},
			{Name: "title", Label: "Title", Kind: KindText, Required: true, Placeholder: "Web Development", Wide: true},
			{Name: "shortDescription", Label: "Short Description", Kind: KindTextarea, Required: true, Wide: true},
			{Name: "fullDescription", Label: "Full Description", Kind: KindTextarea, Required: true, Wide: true},
			{Name: "longDescription", Label: "Long Description", Kind: KindTextarea, Required: true, Wide: true},
			{Name: "color", Label: "Color", Kind: KindSelect, Required: true, Options: enumNames(domain.Colors()), Default: domain.ColorBlue.String()},
			{Name: "gradient", Label: "Gradient Classes", Kind: KindText, Required: true, Placeholder: "from-blue-500 to-blue-600",
				Default: "from-blue-500 to-blue-600"},
			{Name: "features", Label: "Features (one per line)", Kind: KindList, Multiline: true},
			{Name: "benefits", Label: "Benefits (one per line)", Kind: KindList, Multiline: true},
			{Name: "useCases", Label: "Use Cases (one per line)", Kind: KindList, Multiline: true},
			{Name: "technologies", Label: "Technologies (one per line)", Kind: KindList, Multiline: true},
		},
		Key: func(s domain.Service) string { return s.Key() },
		Row: func(s domain.Service) Row {
			return Row{
				ID:          s.ID,
				Title:       s.Title,
				Subtitle:    s.Icon,
				Description: s.ShortDescription,
				Color:       s.Color,
				Tags:        s.Technologies,
			}
		},
	}
	s.Values = func(svc domain.Service) Values {
		return Values{
			"id":               svc.ID,
			"icon":             svc.Icon,
			"title":            svc.Title,
			"shortDescription": svc.ShortDescription,
			"fullDescription":  svc.FullDescription,
			"longDescription":  svc.LongDescription,
			"color":            svc.Color.String(),
			"gradient":         svc.Gradient,
			"features":         s.join("features", svc.Features),
			"benefits":         s.join("benefits", svc.Benefits),
			"useCases":         s.join("useCases", svc.UseCases),
			"technologies":     s.join("technologies", svc.Technologies),
		}
	}
	s.Build = func(v Values) (domain.Service, error) {
		color, err := domain.ParseColor(v["color"])
		if err != nil {
			return domain.Service{}, err
		}
		return domain.Service{
			ID:               v["id"],
			Icon:             v["icon"],
			Title:            v["title"],
			ShortDescription: v["shortDescription"],
			FullDescription:  v["fullDescription"],
			LongDescription:  v["longDescription"],
			Color:            color,
			Gradient:         v["gradient"],
			Features:         s.split(v, "features"),
			Benefits:         s.split(v, "benefits"),
			UseCases:         s.split(v, "useCases"),
			Technologies:     s.split(v, "technologies"),
		}, nil
	}
	return s
}
