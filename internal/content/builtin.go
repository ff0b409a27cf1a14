package content

// builtinProjects is the catalog shipped with the binary.
var builtinProjects = []Project{
	{
		ID:      "ukraine",
		Title:   "Ukraine",
		Place:   "Bene, Ukraine / Hungary",
		Year:    "Ongoing",
		Logline: "A refugee family’s ordinary life between scarcity and care.",
		Description: "Eva met this family in Bene while working on an assignment about Ukrainian refugees. " +
			"There are five children, a mother and a grandmother. The mother is the breadwinner; they barely make ends meet. " +
			"Bea, the eldest daughter, planned to work in Germany but became pregnant. " +
			"Her mother is handicapped after a stroke and hip fracture. This story continues.",
		Images: []Image{
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/MG_3071-scaled.jpg", Caption: "Domestic scene, Bene"},
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/MG_3053-scaled.jpg", Caption: "Children at play"},
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/MG_3085-scaled.jpg", Caption: "Kitchen light"},
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/MG_3042-scaled.jpg", Caption: "Evening meal"},
		},
	},
	{
		ID:      "swallow-song",
		Title:   "Swallow Song",
		Place:   "Bokortanya, Nyíregyháza, Hungary",
		Year:    "Ongoing",
		Logline: "Life and memory in the hamlets around Nyíregyháza.",
		Description: "Bokortanya settlements were formed from 1753 as outlying farm hamlets for Nyíregyháza, once the town’s pantry. " +
			"They declined during the 1950s under communist centralisation. " +
			"After her grandmother, who lived in one of these settlements, passed away, " +
			"Eva began exploring and photographing those who remain.",
		Images: []Image{
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/MG_7894.jpg", Caption: "Morning in Bokortanya"},
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/Bokor_02.jpg", Caption: "Old stable"},
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/Bokor_03.jpg", Caption: "Portrait of resident"},
		},
	},
	{
		ID:      "jordan",
		Title:   "Jordan",
		Place:   "Amman, Jordan",
		Year:    "Ongoing",
		Logline: "Women adapting to new lives amid displacement.",
		Description: "A collaboration with International Medical Corps and the International Rescue Committee. " +
			"Eva travelled to Jordan to meet Syrian and Palestinian refugees in camps, households, and hospitals, " +
			"focusing on how women adapt to their new environment.",
		Images: []Image{
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/Jordan_02.jpg", Caption: "Mother and child"},
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/Jordan_03.jpg", Caption: "Apartment window"},
			{Src: "https://evaaszabo.com/wp-content/uploads/2024/02/Jordan_04.jpg", Caption: "Community clinic"},
		},
	},
}

var builtinBrand = Brand{
	Name: "Eva Szabo",
	Tag:  "documentary photographer",
}

var builtinAbout = About{
	Heading: "About Eva",
	Body: "Eva left university to follow the camera her mother carried. " +
		"Her first sustained project began in her grandmother's village, where stories were told in kitchens and courtyards. " +
		"Since then, she has photographed communities with patience and care, " +
		"focusing on the emotional threads that bind places and people.",
	Timeline: []Milestone{
		{Year: "2019", Text: "Leaves university; begins Grandmother's Village."},
		{Year: "2022", Text: "Photographs in Kyiv and Odessa, focusing on ordinary life between sirens."},
		{Year: "2025", Text: "Book dummy in progress. Select assignments for newspapers; occasional food photography for restaurants."},
	},
}

var builtinBook = Book{
	Title: "Book (in progress)",
	Blurb: "A small-tealights length book drawn from *Grandmother's Village* and *Ukraine*. Early dummies available on request.",
	Cover: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?q=80&w=1600&auto=format&fit=crop",
}

// Builtin returns the library compiled into the binary.
func Builtin() *Library {
	catalog, err := NewCatalog(builtinProjects)
	if err != nil {
		panic("content: invalid builtin catalog: " + err.Error())
	}
	about := builtinAbout
	about.Timeline = append([]Milestone(nil), builtinAbout.Timeline...)
	return &Library{
		Catalog: catalog,
		Brand:   builtinBrand,
		About:   about,
		Book:    builtinBook,
	}
}
