package slider

// DefaultSlides is the hero content shown on the home page
var DefaultSlides = []Slide{
	{
		Title:        "Empowering Youth for Tomorrow Challenges",
		Subtitle:     "Youth Development Programs",
		Description:  "We draw up programmes that enhance youth's overall development to meet their moral, educational and social needs, redirecting their energy to purpose driven life.",
		Image:        "https://images.unsplash.com/photo-1529390079861-591de354faf5?auto=format&fit=crop&w=1920&q=80",
		CTA:          Link{Text: "Our Programs", Href: "/programs"},
		SecondaryCTA: Link{Text: "Get Involved", Href: "/contact"},
	},
	{
		Title:        "Restoring the Dignity of Human-kind",
		Subtitle:     "Serving humanity since 1988",
		Description:  "Suredoor International Centre for Research and Rehabilitation is a humanitarian body dedicated to redirecting members of the public from destructive paths to purpose living.",
		Image:        "https://images.unsplash.com/photo-1542810634-71277d95dcbb?auto=format&fit=crop&w=1920&q=80",
		CTA:          Link{Text: "Donate Now", Href: "/donate"},
		SecondaryCTA: Link{Text: "Learn More", Href: "/about"},
	},
	{
		Title:        "Uplifting Women & Families",
		Subtitle:     "Women Empowerment Initiative",
		Description:  "Creating awareness amongst women on issues affecting the female folk, from family affairs and reproductive health education to skill acquisition and economic matters.",
		Image:        "https://images.unsplash.com/photo-1531123897727-8f129e1688ce?auto=format&fit=crop&w=1920&q=80",
		CTA:          Link{Text: "Support Us", Href: "/donate"},
		SecondaryCTA: Link{Text: "Learn More", Href: "/programs#women"},
	},
	{
		Title:        "Building Stronger Communities",
		Subtitle:     "Public Enlightenment Campaign",
		Description:  "Sensitizing people on topical issues through seminars, workshops, open-air activities, talk shows and conferences for a better society.",
		Image:        "https://images.unsplash.com/photo-1559027615-cd4628902d4a?auto=format&fit=crop&w=1920&q=80",
		CTA:          Link{Text: "Join Us", Href: "/contact"},
		SecondaryCTA: Link{Text: "View Gallery", Href: "/gallery"},
	},
}
